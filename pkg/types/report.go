package types

// ReportSink receives directive reports as they are produced
type ReportSink func(Report)

// PackageResult is the classified outcome for one package
type PackageResult struct {
	Name       string `json:"name"`
	Repository string `json:"repository,omitempty"`
	Outcome    string `json:"outcome"`
	Success    bool   `json:"success"`
}

// TallyEntry is one summary line: how many packages ended with an outcome
type TallyEntry struct {
	Outcome string `json:"outcome"`
	Count   int    `json:"count"`
	Success bool   `json:"success"`
}

// Report summarises one directive invocation
type Report struct {
	Directive string          `json:"directive"`
	Success   bool            `json:"success"`
	Packages  []PackageResult `json:"packages"`
	Tally     []TallyEntry    `json:"tally"`
	Malformed int             `json:"malformed"`
}

// RunSummary aggregates every report of one run
type RunSummary struct {
	Source  string   `json:"source"`
	DryRun  bool     `json:"dry_run"`
	Success bool     `json:"success"`
	Reports []Report `json:"reports"`
}
