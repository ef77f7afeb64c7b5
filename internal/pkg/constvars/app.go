package constvars

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPage         = 1
	AppDefaultPageSize     = 20
	AppMaxPageSize         = 200
)

const (
	ExportTimestampLayout = "2006-01-02 15:04:05"
	ExportDateLayout      = "2006-01-02"
	ExportFileNameFormat  = "cfs_assessments_%s.csv"
)

// Keys read from basic details when building export rows.
const (
	DetailMRNO                 = "mrno"
	DetailAge                  = "age"
	DetailGender               = "gender"
	DetailEDVisitDate          = "edVisitDate"
	DetailEDVisitTime          = "edVisitTime"
	DetailPresentingComplaints = "presentingComplaints"
	DetailBPCount              = "bp_count"
	DetailRRCount              = "rr_count"
	DetailHRCount              = "hr_count"
	DetailSpO2Count            = "spo2_count"
	DetailDisposition          = "disposition"
	DetailDNROrder             = "dnr_order"
	DetailMortality            = "mortality"
	DetailLengthOfStay         = "length_of_stay"
)
