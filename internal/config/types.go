package config

// Probe declares a named endpoint probe.
//
//	probe "gemini-flash" {
//	  method  = "POST"
//	  url     = "https://..."
//	  payload = "{...}"
//	}
type Probe struct {
	Name    string            `hcl:",key"`
	Method  string            `hcl:"method"`
	URL     string            `hcl:"url"`
	Payload string            `hcl:"payload"`
	Headers map[string]string `hcl:"headers"`
	Excerpt int               `hcl:"excerpt"`
	Timeout string            `hcl:"timeout"` // empty means the transport default
}

type Catalog struct {
	Probes []Probe `hcl:"probe"`
}

// Names returns the probe names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Probes))
	for i := range c.Probes {
		names = append(names, c.Probes[i].Name)
	}
	return names
}

// Select returns the probes with the given names, keeping the order of the
// names argument. With no names, all probes are returned.
func (c *Catalog) Select(names ...string) ([]Probe, []string) {
	if len(names) == 0 {
		return c.Probes, nil
	}

	byName := make(map[string]Probe, len(c.Probes))
	for _, p := range c.Probes {
		byName[p.Name] = p
	}

	var (
		selected []Probe
		missing  []string
	)
	for _, n := range names {
		p, ok := byName[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		selected = append(selected, p)
	}
	return selected, missing
}
