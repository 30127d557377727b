package dto

// StudentDashboardDTO summarizes a student's own activity.
type StudentDashboardDTO struct {
	AvailableTests  int64               `json:"available_tests"`
	AttemptedTests  int64               `json:"attempted_tests"`
	AverageScore    float64             `json:"average_score"`
	BestScore       float64             `json:"best_score"`
	PendingRequests int64               `json:"pending_requests"`
	RecentAttempts  []AttemptSummaryDTO `json:"recent_attempts"`
}

// AdminDashboardDTO is the faculty/admin overview.
type AdminDashboardDTO struct {
	TotalStudents     int64              `json:"total_students"`
	PendingApprovals  int64              `json:"pending_approvals"`
	TotalTests        int64              `json:"total_tests"`
	PublishedTests    int64              `json:"published_tests"`
	TotalAttempts     int64              `json:"total_attempts"`
	PendingReattempts int64              `json:"pending_reattempts"`
	TestPerformance   []TestPerformance  `json:"test_performance"`
	CategoryBreakdown map[string]int64   `json:"category_breakdown"`
}

// TestPerformance aggregates attempt outcomes per test.
type TestPerformance struct {
	TestID       uint    `json:"test_id"`
	Title        string  `json:"title"`
	AttemptCount int64   `json:"attempt_count"`
	AverageScore float64 `json:"average_score"`
}
