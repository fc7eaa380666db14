package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Code          BoardCode
	Name          string
	Desc          string
	MaxThreads    int64
	MaxReplies    int64
	MaxImgReplies int64
	MaxSubLen     int64
	MaxComLen     int64
	MaxFileSize   int64
	IsNSFW        bool
}

// Board is immutable once created. A zero limit means unlimited.
type Board struct {
	Code          BoardCode `json:"code"`
	Name          string    `json:"name"`
	Desc          string    `json:"desc"`
	MaxThreads    int64     `json:"max_threads"`
	MaxReplies    int64     `json:"max_replies"`
	MaxImgReplies int64     `json:"max_img_replies"`
	MaxSubLen     int64     `json:"max_sub_len"`
	MaxComLen     int64     `json:"max_com_len"`
	MaxFileSize   int64     `json:"max_file_size"`
	IsNSFW        bool      `json:"is_nsfw"`
	CreatedAt     time.Time `json:"created_at"`
}
