package model

// Ingestion job states. Terminal states are final, no retry.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Document is a user-owned text submitted for ingestion.
type Document struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement;comment:文档ID"`
	OwnerID   uint64 `json:"owner_id" gorm:"not null;index:idx_doc_owner;comment:所有者ID"`
	Title     string `json:"title" gorm:"size:255;not null;comment:标题"`
	Content   string `json:"content" gorm:"type:text;comment:正文"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for GORM.
func (d *Document) TableName() string {
	return "documents"
}

// DocumentChunk is one embedded window of a document.
type DocumentChunk struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	DocumentID uint64 `json:"document_id" gorm:"not null;index:idx_chunk_doc;comment:文档ID"`
	ChunkIndex int    `json:"chunk_index" gorm:"not null;comment:块序号"`
	Content    string `json:"content" gorm:"type:text;comment:块内容"`
	Embedding  Vector `json:"-" gorm:"type:text;comment:嵌入向量JSON"`
	CreatedAt  int64  `json:"created_at" gorm:"autoCreateTime:milli"`
}

// TableName returns the table name for GORM.
func (c *DocumentChunk) TableName() string {
	return "document_chunks"
}

// IngestionJob tracks an async ingestion run for a document.
// Job rows survive document deletion as an audit trail.
type IngestionJob struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement;comment:任务ID"`
	DocumentID uint64 `json:"document_id" gorm:"not null;index:idx_job_doc;comment:文档ID"`
	Status     string `json:"status" gorm:"size:16;not null;default:pending;comment:状态"`
	Error      string `json:"error,omitempty" gorm:"type:text;comment:失败原因"`
	CreatedAt  int64  `json:"created_at" gorm:"autoCreateTime:milli"`
	UpdatedAt  int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for GORM.
func (j *IngestionJob) TableName() string {
	return "ingestion_jobs"
}

// Terminal reports whether the job reached a final state.
func (j *IngestionJob) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
