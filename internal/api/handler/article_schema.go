package handler

type createArticleRequest struct {
	Title    string `json:"title"    validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

type updateArticleRequest struct {
	Title    string `json:"title"    validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PUBLIC PRIVATE"`
}
