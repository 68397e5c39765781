package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// Load reads a catalog definition from a YAML file. See Parse for the
// expected document shape.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML document of the form:
//
//	questions:
//	  - id: 1
//	    type: rating
//	    prompt: How was it?
//	    scale: 5
//	    scale_labels:
//	      1: Very Poor
//	      5: Excellent
//	  - id: 2
//	    type: text
//	    prompt: Anything else?
//	    max_length: 500
//
// and validates it with New.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Questions)
}
