package descriptor

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the asset category a descriptor describes.
type Kind string

const (
	KindMaterial Kind = "material"
	KindTexture  Kind = "texture"
)

// Schema versions are fixed per kind.
const (
	MaterialSchemaVersion = 4
	TextureSchemaVersion  = 1
)

// Technique quality written into every material.
const techniqueQuality = "1"

// Attribute is one key/value pair of a descriptor.
type Attribute struct {
	Key   string
	Value string
}

// Descriptor is a material or texture description ready to be serialized.
// Attributes are kept in output order.
type Descriptor struct {
	Kind          Kind
	Name          string
	SchemaVersion int
	Attributes    []Attribute
}

// Extension returns the file extension for the descriptor kind.
func (d Descriptor) Extension() string {
	return "." + string(d.Kind)
}

// Attr returns the value of key and whether it is present.
func (d Descriptor) Attr(key string) (string, bool) {
	for _, a := range d.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Map returns the attributes as a map, used for schema validation.
func (d Descriptor) Map() map[string]any {
	m := make(map[string]any, len(d.Attributes))
	for _, a := range d.Attributes {
		m[a.Key] = a.Value
	}
	return m
}

// NewMaterial returns the descriptor for a material named name that renders
// with program.
func NewMaterial(name, program string) Descriptor {
	return Descriptor{
		Kind:          KindMaterial,
		Name:          name,
		SchemaVersion: MaterialSchemaVersion,
		Attributes: []Attribute{
			{Key: "version", Value: strconv.Itoa(MaterialSchemaVersion)},
			{Key: "program", Value: program},
		},
	}
}

var (
	filterModes  = []string{"nearest", "linear", "trilinear"}
	addressModes = []string{"wrap", "clamp"}
)

// FilterModes returns the accepted texture filter modes.
func FilterModes() []string { return append([]string(nil), filterModes...) }

// AddressModes returns the accepted texture address modes.
func AddressModes() []string { return append([]string(nil), addressModes...) }

// TextureOptions are the optional texture attributes. Zero values are left
// out of the descriptor.
type TextureOptions struct {
	Filter      string
	Address     string
	Rectangular bool
	Mipmapped   bool
}

// Validate checks the filter and address modes.
func (o TextureOptions) Validate() error {
	if o.Filter != "" && !contains(filterModes, o.Filter) {
		return fmt.Errorf("invalid filter mode '%s' (want %s)", o.Filter, strings.Join(filterModes, ", "))
	}
	if o.Address != "" && !contains(addressModes, o.Address) {
		return fmt.Errorf("invalid address mode '%s' (want %s)", o.Address, strings.Join(addressModes, ", "))
	}
	return nil
}

// NewTexture returns the descriptor for the texture sampled from image.
// Attributes are ordered version, filter, address, rectangular, mipmapped,
// image; options that were not supplied are omitted.
func NewTexture(image string, opts TextureOptions) Descriptor {
	attrs := []Attribute{{Key: "version", Value: strconv.Itoa(TextureSchemaVersion)}}
	if opts.Filter != "" {
		attrs = append(attrs, Attribute{Key: "filter", Value: opts.Filter})
	}
	if opts.Address != "" {
		attrs = append(attrs, Attribute{Key: "address", Value: opts.Address})
	}
	if opts.Rectangular {
		attrs = append(attrs, Attribute{Key: "rectangular", Value: "true"})
	}
	if opts.Mipmapped {
		attrs = append(attrs, Attribute{Key: "mipmapped", Value: "true"})
	}
	attrs = append(attrs, Attribute{Key: "image", Value: image})

	return Descriptor{
		Kind:          KindTexture,
		Name:          image,
		SchemaVersion: TextureSchemaVersion,
		Attributes:    attrs,
	}
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
