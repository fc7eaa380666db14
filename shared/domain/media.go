package domain

// Media is the original/thumbnail pair attached to a comment. Names, sizes,
// extension and hash are recorded once at ingestion.
type Media struct {
	FileName  string    `json:"file_name"` // client file stem, display only
	Name      MediaName `json:"media_name"`
	Size      int64     `json:"media_size"`
	Ext       string    `json:"media_ext"`
	Desc      *string   `json:"media_desc"`
	Hash      string    `json:"media_hash"`
	ThumbName MediaName `json:"thumb_name"`
	ThumbSize int64     `json:"thumb_size"`
}
