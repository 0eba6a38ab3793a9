package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Resume is the structured record produced by the extraction pipeline.
// It serializes as a nested mapping with empty strings and empty lists for
// absent values; downstream converters rely on every field being present.
type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Certificates []Certificate `json:"certificates"`
	Projects     []Project     `json:"projects"`
	Volunteer    []Volunteer   `json:"volunteer"`
	Languages    []Language    `json:"languages"`
	Interests    []Interest    `json:"interests"`
}

// New returns a Resume with all list fields initialized so that an empty
// document still serializes with every key present.
func New() Resume {
	return Resume{
		Basics:       Basics{Profiles: []Profile{}},
		Work:         []Work{},
		Education:    []Education{},
		Skills:       []Skill{},
		Certificates: []Certificate{},
		Projects:     []Project{},
		Volunteer:    []Volunteer{},
		Languages:    []Language{},
		Interests:    []Interest{},
	}
}

// Basics captures top-of-resume contact and identity details.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Profiles []Profile `json:"profiles"`
	Summary  string    `json:"summary"`
}

// Profile is a social or code-hosting link.
type Profile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// Work represents a work history entry.
type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Location   string   `json:"location"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Education represents an education entry.
type Education struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Certificate represents a license or certification entry.
type Certificate struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url,omitempty"`
}

// Project represents a notable project.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Volunteer represents a volunteer activity entry.
type Volunteer struct {
	Organization string `json:"organization"`
	Position     string `json:"position"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Summary      string `json:"summary"`
}

// Skill is a single extracted skill name.
type Skill struct {
	Name string `json:"name"`
}

// Language is a spoken language with optional fluency.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

// Interest is a single interest or hobby.
type Interest struct {
	Name string `json:"name"`
}

// canonical date form: bare year or year-month, or empty for open-ended.
var datePattern = regexp.MustCompile(`^\d{4}(-(0[1-9]|1[0-2]))?$`)

// Validate enforces canonical date formatting across all dated entries.
func (r Resume) Validate() error {
	for i, w := range r.Work {
		if err := validateDate(w.StartDate, fmt.Sprintf("work[%d].startDate", i)); err != nil {
			return err
		}
		if err := validateDate(w.EndDate, fmt.Sprintf("work[%d].endDate", i)); err != nil {
			return err
		}
	}
	for i, e := range r.Education {
		if err := validateDate(e.StartDate, fmt.Sprintf("education[%d].startDate", i)); err != nil {
			return err
		}
		if err := validateDate(e.EndDate, fmt.Sprintf("education[%d].endDate", i)); err != nil {
			return err
		}
	}
	for i, c := range r.Certificates {
		if err := validateDate(c.Date, fmt.Sprintf("certificates[%d].date", i)); err != nil {
			return err
		}
	}
	for i, p := range r.Projects {
		if err := validateDate(p.StartDate, fmt.Sprintf("projects[%d].startDate", i)); err != nil {
			return err
		}
		if err := validateDate(p.EndDate, fmt.Sprintf("projects[%d].endDate", i)); err != nil {
			return err
		}
	}
	for i, v := range r.Volunteer {
		if err := validateDate(v.StartDate, fmt.Sprintf("volunteer[%d].startDate", i)); err != nil {
			return err
		}
		if err := validateDate(v.EndDate, fmt.Sprintf("volunteer[%d].endDate", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateDate(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if !datePattern.MatchString(value) {
		return fmt.Errorf("%s must be YYYY or YYYY-MM", field)
	}
	return nil
}
