package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type CareerDefinition struct {
	Name           string   `json:"-"`
	RequiredSkills []string `json:"required_skills"`
	SalaryRange    string   `json:"salary_range"`
	GrowthRate     string   `json:"growth_rate"`
	Education      string   `json:"education"`
}

// CareerPaths is encoded as a JSON object keyed by career name. Key order is
// kept on decode so rankings can fall back to source order for ties.
type CareerPaths []CareerDefinition

func (p CareerPaths) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *CareerPaths) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("career_paths: expected object, got %v", tok)
	}

	out := make(CareerPaths, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("career_paths: expected string key, got %v", tok)
		}
		var def CareerDefinition
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("career_paths[%s]: %w", name, err)
		}
		def.Name = name
		out = append(out, def)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

func (p CareerPaths) Find(name string) (CareerDefinition, bool) {
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return CareerDefinition{}, false
}

type MarketData struct {
	RequiredSkills []string    `json:"required_skills"`
	CareerPaths    CareerPaths `json:"career_paths"`
}

func (m MarketData) Validate() error {
	if len(m.RequiredSkills) == 0 {
		return fmt.Errorf("market data: required_skills is empty")
	}
	for i, s := range m.RequiredSkills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("market data: required_skills[%d] is blank", i)
		}
	}
	seen := make(map[string]struct{}, len(m.CareerPaths))
	for _, c := range m.CareerPaths {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("market data: career with blank name")
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("market data: duplicate career %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Resources maps a skill name to its learning resources.
type Resources map[string][]Resource

// Catalog is the read-only data every pipeline run is evaluated against.
type Catalog struct {
	Market    MarketData
	Resources Resources
}
