package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML content override. Each top-level key present in the
// file replaces that part of the compiled-in defaults as a whole; absent keys
// keep the defaults.
func LoadFile(path string) (Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return Site{}, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	site, err := Decode(f)
	if err != nil {
		return Site{}, fmt.Errorf("reading content %s: %w", path, err)
	}
	return site, nil
}

// Decode parses a YAML override on top of Default and validates the result.
// A key such as profile replaces the whole default profile, so fields the
// override leaves out are empty rather than inherited.
func Decode(r io.Reader) (Site, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Site{}, fmt.Errorf("reading yaml: %w", err)
	}

	var override Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return Site{}, fmt.Errorf("decoding yaml: %w", err)
	}

	var present map[string]yaml.Node
	if err := yaml.Unmarshal(data, &present); err != nil {
		return Site{}, fmt.Errorf("decoding yaml: %w", err)
	}

	site := Default()
	for key := range present {
		switch key {
		case "profile":
			site.Profile = override.Profile
		case "projects":
			site.Projects = override.Projects
		case "skills":
			site.Skills = override.Skills
		case "achievements":
			site.Achievements = override.Achievements
		case "experience":
			site.Experience = override.Experience
		case "socials":
			site.Socials = override.Socials
		case "contact_info":
			site.ContactInfo = override.ContactInfo
		}
	}

	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Dump writes the site as YAML, suitable as a starting point for an override.
func (s Site) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// Validate checks that every list the page renders is non-empty and that
// every link that is present is an absolute http(s) URL.
func (s Site) Validate() error {
	var errs []error

	if s.Profile.Name == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	if len(s.Projects) == 0 {
		errs = append(errs, errors.New("projects must not be empty"))
	}
	if len(s.Skills) == 0 {
		errs = append(errs, errors.New("skills must not be empty"))
	}
	if len(s.Achievements) == 0 {
		errs = append(errs, errors.New("achievements must not be empty"))
	}
	if len(s.Experience) == 0 {
		errs = append(errs, errors.New("experience must not be empty"))
	}

	for i, p := range s.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		errs = append(errs, checkURL(fmt.Sprintf("projects[%d].demo_url", i), p.DemoURL))
		errs = append(errs, checkURL(fmt.Sprintf("projects[%d].source_url", i), p.SourceURL))
	}
	for i, c := range s.Skills {
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: title is required", i))
		}
		errs = append(errs, checkAccent(fmt.Sprintf("skills[%d].accent", i), c.Accent))
	}
	for i, a := range s.Achievements {
		if a.Title == "" {
			errs = append(errs, fmt.Errorf("achievements[%d]: title is required", i))
		}
		errs = append(errs, checkAccent(fmt.Sprintf("achievements[%d].accent", i), a.Accent))
	}
	for i, e := range s.Experience {
		if e.Role == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: role is required", i))
		}
	}
	for i, l := range s.Socials {
		errs = append(errs, checkURL(fmt.Sprintf("socials[%d].url", i), l.URL))
	}
	for i, c := range s.ContactInfo {
		errs = append(errs, checkURL(fmt.Sprintf("contact_info[%d].url", i), c.URL))
	}

	return errors.Join(errs...)
}

func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: %q is not an absolute http(s) URL", field, raw)
	}
	return nil
}

func checkAccent(field string, a Accent) error {
	switch a {
	case "", AccentPrimary, AccentSecondary:
		return nil
	}
	return fmt.Errorf("%s: unknown accent %q", field, a)
}
