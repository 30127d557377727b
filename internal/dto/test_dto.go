package dto

import "time"

// QuestionCreateDTO is used within TestCreateDTO for faculty/admin test creation.
type QuestionCreateDTO struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectOption *int     `json:"correct_option" binding:"required,min=0,max=3"`
	FileURL       *string  `json:"file_url"`
}

// TestCreateDTO is for faculty/admin to create a question bank with all its questions.
type TestCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Subject         string              `json:"subject" binding:"required"`
	Category        string              `json:"category" binding:"required,oneof=MRB AIAPGET"`
	Difficulty      string              `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,gt=0"`
	NegativeMarking bool                `json:"negative_marking"`
	StartsAt        *time.Time          `json:"starts_at"`
	EndsAt          *time.Time          `json:"ends_at"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestUpdateDTO replaces test metadata and, when Questions is non-nil, the
// whole question set.
type TestUpdateDTO struct {
	Title           string              `json:"title" binding:"omitempty"`
	Subject         string              `json:"subject" binding:"omitempty"`
	Difficulty      string              `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	DurationMinutes int                 `json:"duration_minutes" binding:"omitempty,gt=0"`
	NegativeMarking *bool               `json:"negative_marking"`
	StartsAt        *time.Time          `json:"starts_at"`
	EndsAt          *time.Time          `json:"ends_at"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"omitempty,min=1,dive"`
}

// PublicQuestionDTO is the student-facing read shape. It has no field for the
// correct option; the answer key only exists on the internal scoring path.
type PublicQuestionDTO struct {
	ID          uint     `json:"id"`
	OrderInTest int      `json:"order_in_test"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	FileURL     *string  `json:"file_url,omitempty"`
}

// PublicTestDTO is the student-facing test projection.
type PublicTestDTO struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Subject         string              `json:"subject"`
	Category        string              `json:"category"`
	Difficulty      string              `json:"difficulty,omitempty"`
	DurationMinutes int                 `json:"duration_minutes"`
	NegativeMarking bool                `json:"negative_marking"`
	Questions       []PublicQuestionDTO `json:"questions"`
}

// TestForAttemptDTO is the response for a student opening a test.
type TestForAttemptDTO struct {
	Test          PublicTestDTO `json:"test"`
	HasAttempted  bool          `json:"has_attempted"`
	RequestStatus *string       `json:"request_status,omitempty"` // pending/approved/rejected re-attempt request, if any
}

type TestSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Subject         string    `json:"subject"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty,omitempty"`
	Status          string    `json:"status"`
	DurationMinutes int       `json:"duration_minutes"`
	NegativeMarking bool      `json:"negative_marking"`
	QuestionCount   int       `json:"question_count"`
	AttemptCount    int64     `json:"attempt_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// AdminQuestionDTO is the faculty/admin read shape, answer key included.
type AdminQuestionDTO struct {
	ID            uint     `json:"id"`
	OrderInTest   int      `json:"order_in_test"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	FileURL       *string  `json:"file_url,omitempty"`
}

type AdminTestDTO struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Subject         string             `json:"subject"`
	Category        string             `json:"category"`
	Difficulty      string             `json:"difficulty,omitempty"`
	Status          string             `json:"status"`
	DurationMinutes int                `json:"duration_minutes"`
	NegativeMarking bool               `json:"negative_marking"`
	AttemptCount    int64              `json:"attempt_count"`
	StartsAt        *time.Time         `json:"starts_at,omitempty"`
	EndsAt          *time.Time         `json:"ends_at,omitempty"`
	Questions       []AdminQuestionDTO `json:"questions,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type SubjectCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=MRB AIAPGET"`
	Description string `json:"description"`
}
