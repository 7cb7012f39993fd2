package storage

// Candidate is the basic account a candidate signed up with. It is the
// lowest-priority source when resolving a displayed profile.
type Candidate struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CandidateProfile is the persisted, editable profile. Empty strings mean
// the field was never set.
type CandidateProfile struct {
	CandidateID int64  `json:"candidate_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	Summary     string `json:"summary"`
	Education   string `json:"education"`
	Experience  string `json:"experience"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	UpdatedAt   string `json:"updated_at"`
}

// Job is a job posting; Skills is the comma-separated requirement list.
type Job struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Skills    string `json:"skills"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CVFile represents metadata about an uploaded resume. The bytes live in
// blob storage under ObjectKey.
type CVFile struct {
	ID          int64  `json:"id"`
	CandidateID int64  `json:"candidate_id"`
	Filename    string `json:"filename"`
	ObjectKey   string `json:"object_key"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	SHA256      string `json:"sha256"`
	UploadedAt  string `json:"uploaded_at"`
}

// ParseJob tracks an asynchronous re-parse of a candidate's resume.
type ParseJob struct {
	ID           int64   `json:"id"`
	CandidateID  int64   `json:"candidate_id"`
	Status       string  `json:"status"` // pending, processing, completed, failed
	ErrorMessage *string `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

const (
	JobPending    = "pending"
	JobProcessing = "processing"
	JobCompleted  = "completed"
	JobFailed     = "failed"
)
