package dto

type UploadResponse struct {
	Path      string `example:"/images/dishes/2f1c7a0e.jpg" json:"path"`
	Thumbnail string `example:"/images/dishes/thumbs/2f1c7a0e.jpg" json:"thumbnail"`
}
