package aptget

import "fmt"

// Commands builds the three command lines the installer runs.
// Values are interpolated verbatim.
type Commands struct {
	PackageManager string
	RepositoryTool string
}

// DefaultCommands targets apt-get and add-apt-repository on PATH
func DefaultCommands() Commands {
	return Commands{
		PackageManager: "apt-get",
		RepositoryTool: "add-apt-repository",
	}
}

// Update returns the index refresh command
func (c Commands) Update() string {
	return fmt.Sprintf("%s update", c.PackageManager)
}

// AddRepository returns the PPA registration command for id
func (c Commands) AddRepository(id string) string {
	return fmt.Sprintf("%s -y ppa:%s", c.RepositoryTool, id)
}

// Install returns the install command for pkg
func (c Commands) Install(pkg string) string {
	return fmt.Sprintf("%s install %s -y", c.PackageManager, pkg)
}
