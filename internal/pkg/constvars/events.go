package constvars

const (
	EventAssessmentCreated = "assessment.created"
	EventAssessmentUpdated = "assessment.updated"
	EventAssessmentDeleted = "assessment.deleted"
	EventExportCompleted   = "export.completed"
)
