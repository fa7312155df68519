package invoice

// External is one issued document as the external API reports it.
type External struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"datainc"`
	Status    *string `json:"status"`
	Generated *string `json:"nfgerada"`
	Notes     *string `json:"obs"`
	Document
}
