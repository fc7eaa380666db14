package api

import (
	"github.com/itchan-dev/imageboard/shared/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Code          string `json:"code" validate:"notblank,max=5"`
	Name          string `json:"name" validate:"notblank,max=100"`
	Desc          string `json:"desc" validate:"notblank,max=100"`
	MaxThreads    int64  `json:"max_threads" validate:"min=0"`
	MaxReplies    int64  `json:"max_replies" validate:"min=0"`
	MaxImgReplies int64  `json:"max_img_replies" validate:"min=0"`
	MaxSubLen     int64  `json:"max_sub_len" validate:"min=0"`
	MaxComLen     int64  `json:"max_com_len" validate:"min=0"`
	MaxFileSize   int64  `json:"max_file_size" validate:"min=0"`
	IsNSFW        bool   `json:"is_nsfw"`
}

// Response DTOs

// BoardListResponse wraps a list of boards
type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}
