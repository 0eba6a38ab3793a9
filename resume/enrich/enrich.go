// Package enrich merges auxiliary sidecar exports (a personal-info JSON
// file and skills/certifications/projects CSV exports) into an
// already-parsed resume. Merging only fills gaps: a value already present
// on the resume is never overwritten.
package enrich

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-parser/resume/model"
)

// PersonalInfo is the shape of the optional personal_info.json sidecar.
type PersonalInfo struct {
	Phone            string   `json:"phone"`
	AdditionalSkills []string `json:"additional_skills"`
}

// MergePersonalInfo adds sidecar skills and a phone number when the resume
// lacks one. It reports whether anything changed.
func MergePersonalInfo(resume *model.Resume, data []byte) (bool, error) {
	var info PersonalInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return false, fmt.Errorf("parse personal info: %w", err)
	}

	updated := false
	existing := skillKeySet(resume.Skills)
	for _, name := range info.AdditionalSkills {
		if addSkill(resume, name, existing) {
			updated = true
		}
	}

	if phone := strings.TrimSpace(info.Phone); phone != "" && resume.Basics.Phone == "" {
		resume.Basics.Phone = phone
		updated = true
	}
	return updated, nil
}

// MergeSkillsCSV merges a skills export (column "Name") into the skill list.
func MergeSkillsCSV(resume *model.Resume, r io.Reader) (bool, error) {
	rows, err := readCSV(r)
	if err != nil {
		return false, fmt.Errorf("read skills csv: %w", err)
	}
	updated := false
	existing := skillKeySet(resume.Skills)
	for _, row := range rows {
		if addSkill(resume, row["Name"], existing) {
			updated = true
		}
	}
	return updated, nil
}

// MergeCertificationsCSV enriches certificates from an export with columns
// Name, Authority, Url, Started On, Finished On. Known certificates gain
// missing issuer/date/url fields; unknown ones are appended.
func MergeCertificationsCSV(resume *model.Resume, r io.Reader) (bool, error) {
	rows, err := readCSV(r)
	if err != nil {
		return false, fmt.Errorf("read certifications csv: %w", err)
	}

	index := make(map[string]int, len(resume.Certificates))
	for i, cert := range resume.Certificates {
		index[strings.ToLower(strings.TrimSpace(cert.Name))] = i
	}

	updated := false
	for _, row := range rows {
		name := strings.TrimSpace(row["Name"])
		if name == "" {
			continue
		}
		issuer := strings.TrimSpace(row["Authority"])
		url := strings.TrimSpace(row["Url"])
		dateRaw := strings.TrimSpace(row["Started On"])
		if dateRaw == "" {
			dateRaw = strings.TrimSpace(row["Finished On"])
		}
		date := parseYearMonth(dateRaw)

		if i, ok := index[strings.ToLower(name)]; ok {
			cert := &resume.Certificates[i]
			if setIfMissing(&cert.Issuer, issuer) {
				updated = true
			}
			if setIfMissing(&cert.Date, date) {
				updated = true
			}
			if setIfMissing(&cert.URL, url) {
				updated = true
			}
			continue
		}

		resume.Certificates = append(resume.Certificates, model.Certificate{
			Name:   name,
			Issuer: issuer,
			Date:   date,
			URL:    url,
		})
		index[strings.ToLower(name)] = len(resume.Certificates) - 1
		updated = true
	}
	return updated, nil
}

// MergeProjectsCSV enriches projects from an export with columns Title,
// Description, Url, Started On, Finished On.
func MergeProjectsCSV(resume *model.Resume, r io.Reader) (bool, error) {
	rows, err := readCSV(r)
	if err != nil {
		return false, fmt.Errorf("read projects csv: %w", err)
	}

	index := make(map[string]int, len(resume.Projects))
	for i, project := range resume.Projects {
		index[strings.ToLower(strings.TrimSpace(project.Name))] = i
	}

	updated := false
	for _, row := range rows {
		name := strings.TrimSpace(row["Title"])
		if name == "" {
			continue
		}
		description := strings.TrimSpace(row["Description"])
		url := strings.TrimSpace(row["Url"])
		start := parseYearMonth(strings.TrimSpace(row["Started On"]))
		end := parseYearMonth(strings.TrimSpace(row["Finished On"]))

		if i, ok := index[strings.ToLower(name)]; ok {
			project := &resume.Projects[i]
			if setIfMissing(&project.Description, description) {
				updated = true
			}
			if setIfMissing(&project.URL, url) {
				updated = true
			}
			if setIfMissing(&project.StartDate, start) {
				updated = true
			}
			if setIfMissing(&project.EndDate, end) {
				updated = true
			}
			continue
		}

		resume.Projects = append(resume.Projects, model.Project{
			Name:        name,
			Description: description,
			URL:         url,
			StartDate:   start,
			EndDate:     end,
		})
		index[strings.ToLower(name)] = len(resume.Projects) - 1
		updated = true
	}
	return updated, nil
}

func addSkill(resume *model.Resume, name string, existing map[string]struct{}) bool {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return false
	}
	key := strings.ToLower(clean)
	if _, ok := existing[key]; ok {
		return false
	}
	resume.Skills = append(resume.Skills, model.Skill{Name: clean})
	existing[key] = struct{}{}
	return true
}

func skillKeySet(skills []model.Skill) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[strings.ToLower(strings.TrimSpace(skill.Name))] = struct{}{}
	}
	return set
}

func setIfMissing(field *string, value string) bool {
	if value == "" || *field != "" {
		return false
	}
	*field = value
	return true
}

var yearMonthLayouts = []string{"Jan 2006", "January 2006", "2006-01", "2006"}

// parseYearMonth normalizes a sidecar date to YYYY-MM where possible,
// passing unrecognized values through unchanged.
func parseYearMonth(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range yearMonthLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01")
		}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01")
	}
	return raw
}

// readCSV reads all records as header-keyed maps, tolerating a UTF-8 BOM.
func readCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
