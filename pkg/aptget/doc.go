// Package aptget implements the apt-get directive: it installs system packages
// named in a task file by shelling out to the package manager.
//
// Each entry in the directive's list is a package name, or a two element list
// of package name and PPA identifier:
//
//	- apt-get:
//	    - vim
//	    - [htop, some/ppa]
//
// The index is refreshed once up front and again after every PPA is added.
// Each install is classified by scanning the tool's combined output against
// an ordered rule table (see DefaultRules); the exit status is not consulted.
// Outcomes are tallied, and the directive succeeds when no package ended in
// a failing outcome.
package aptget
