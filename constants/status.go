package constants

// ScanStatus is the canonical status for rows in scan_job.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusQueued    ScanStatus = "QUEUED"    // submitted, waiting for a worker
	ScanStatusRunning   ScanStatus = "RUNNING"   // classification in progress
	ScanStatusScanOK    ScanStatus = "SCAN_OK"   // candidates + auto-selection stored
	ScanStatusConfirmed ScanStatus = "CONFIRMED" // user confirmed, contact created
	ScanStatusFailed    ScanStatus = "FAILED"    // terminal failure
)

// ScanStatuses holds the allowed values for the status field in ScanJob.
var ScanStatuses = []string{
	string(ScanStatusQueued),
	string(ScanStatusRunning),
	string(ScanStatusScanOK),
	string(ScanStatusConfirmed),
	string(ScanStatusFailed),
}

// ContactSource records how a contact entered the system.
type ContactSource string

const (
	SourceScan   ContactSource = "SCAN"
	SourceManual ContactSource = "MANUAL"
	SourceImport ContactSource = "IMPORT"
)

// ContactSources holds the allowed values for the source field in Contact.
var ContactSources = []string{
	string(SourceScan),
	string(SourceManual),
	string(SourceImport),
}
