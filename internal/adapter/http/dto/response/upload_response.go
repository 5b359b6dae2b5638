package response

import (
	"photostudio/internal/domain/entities"
)

type UploadBatchResponse struct {
	Accepted []entities.UploadResult `json:"accepted"`
	Rejected []entities.UploadResult `json:"rejected"`
}

func FromUploadResults(results []entities.UploadResult) UploadBatchResponse {
	out := UploadBatchResponse{
		Accepted: make([]entities.UploadResult, 0, len(results)),
		Rejected: make([]entities.UploadResult, 0),
	}
	for _, r := range results {
		if r.Accepted {
			out.Accepted = append(out.Accepted, r)
		} else {
			out.Rejected = append(out.Rejected, r)
		}
	}
	return out
}
