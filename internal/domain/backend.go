package domain

// Capability identifies one operation a backend can perform
type Capability string

const (
	CapabilityText      Capability = "extract_text"
	CapabilityImages    Capability = "extract_images"
	CapabilityWatermark Capability = "apply_watermark"
)

// Descriptor identifies one engine and the capabilities it advertises
type Descriptor struct {
	Name         string       `json:"name"`
	Kind         BackendKind  `json:"kind"`
	Capabilities []Capability `json:"capabilities"`
}

// BackendKind distinguishes how an engine is invoked
type BackendKind string

const (
	BackendKindInProcess BackendKind = "in-process"
	BackendKindExternal  BackendKind = "external"
	BackendKindRemote    BackendKind = "remote"
)

// Supports reports whether the descriptor advertises the given capability
func (d Descriptor) Supports(c Capability) bool {
	for _, have := range d.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Image is one extracted image. Name is unique within a single extraction
// call and encodes page index, in-page index and/or format extension.
type Image struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}
