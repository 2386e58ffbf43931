package model

// Book represents a catalog entry, optionally backed by an uploaded
// file whose text was extracted at upload time.
type Book struct {
	ID              uint64 `json:"id" gorm:"primaryKey;autoIncrement;comment:图书ID"`
	Title           string `json:"title" gorm:"size:255;not null;index:idx_book_title;comment:书名"`
	Author          string `json:"author" gorm:"size:255;comment:作者"`
	Genre           string `json:"genre" gorm:"size:64;index:idx_book_genre;comment:类型"`
	Summary         string `json:"summary" gorm:"type:text;comment:摘要"`
	ReviewConsensus string `json:"review_consensus" gorm:"type:text;comment:评论共识"`
	FileKey         string `json:"file_key,omitempty" gorm:"size:128;comment:存储键"`
	FileName        string `json:"file_name,omitempty" gorm:"size:255;comment:原始文件名"`
	ExtractedText   string `json:"-" gorm:"type:text;comment:提取文本"`
	CreatedAt       int64  `json:"created_at" gorm:"autoCreateTime:milli"`
	UpdatedAt       int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for GORM.
func (b *Book) TableName() string {
	return "books"
}

// Review is a member's rating and comment on a book.
type Review struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID    uint64 `json:"book_id" gorm:"not null;index:idx_review_book;comment:图书ID"`
	UserID    uint64 `json:"user_id" gorm:"not null;index:idx_review_user;comment:用户ID"`
	Rating    int    `json:"rating" gorm:"not null;comment:评分 1-5"`
	Comment   string `json:"comment" gorm:"type:text;comment:评论内容"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime:milli"`
}

// TableName returns the table name for GORM.
func (r *Review) TableName() string {
	return "reviews"
}

// BookBorrow tracks a borrow; ReturnedAt stays zero while active.
type BookBorrow struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID     uint64 `json:"book_id" gorm:"not null;index:idx_borrow_book;comment:图书ID"`
	UserID     uint64 `json:"user_id" gorm:"not null;index:idx_borrow_user;comment:用户ID"`
	BorrowedAt int64  `json:"borrowed_at" gorm:"autoCreateTime:milli;comment:借阅时间"`
	ReturnedAt int64  `json:"returned_at,omitempty" gorm:"default:0;comment:归还时间, 0表示未归还"`
}

// TableName returns the table name for GORM.
func (b *BookBorrow) TableName() string {
	return "book_borrows"
}

// Active reports whether the borrow has not been returned yet.
func (b *BookBorrow) Active() bool {
	return b.ReturnedAt == 0
}
