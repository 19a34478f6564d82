package entity

// Style is an immutable catalog entry describing a décor style.
type Style struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	NameAr      string   `json:"nameAr"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Keywords    []string `json:"keywords"`
}

// StyleScore is one entry of the ranked list produced by image analysis.
type StyleScore struct {
	Style      *Style `json:"style"`
	Confidence int    `json:"confidence"`
}
