package usecase

// UploadInput is a file received from a multipart form.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
