package main

// Parse a resume PDF into structured JSON:
//   go run ./cmd/parse -pdf resume.pdf -o out.json

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"resume-parser/internal/extract"
	"resume-parser/resume/enrich"
	"resume-parser/resume/model"
	"resume-parser/resume/parse"
)

func main() {
	var (
		pdfPath      = flag.String("pdf", "", "path to the resume PDF (required)")
		outPath      = flag.String("o", "", "write JSON to this file instead of stdout")
		personalInfo = flag.String("personal-info", "", "optional personal info JSON sidecar")
		skillsCSV    = flag.String("skills-csv", "", "optional skills CSV sidecar")
		certsCSV     = flag.String("certifications-csv", "", "optional certifications CSV sidecar")
		projectsCSV  = flag.String("projects-csv", "", "optional projects CSV sidecar")
		indent       = flag.Bool("indent", true, "indent the JSON output")
	)
	flag.Parse()

	if *pdfPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*pdfPath)
	if err != nil {
		log.Fatalf("read pdf: %v", err)
	}

	pages, err := extract.Pages(raw)
	if err != nil {
		log.Fatalf("decode pdf: %v", err)
	}

	resume := parse.Resume(pages)

	if *personalInfo != "" {
		data, err := os.ReadFile(*personalInfo)
		if err != nil {
			log.Fatalf("read personal info: %v", err)
		}
		if _, err := enrich.MergePersonalInfo(&resume, data); err != nil {
			log.Fatalf("merge personal info: %v", err)
		}
	}
	mergeCSV(&resume, *skillsCSV, "skills", enrich.MergeSkillsCSV)
	mergeCSV(&resume, *certsCSV, "certifications", enrich.MergeCertificationsCSV)
	mergeCSV(&resume, *projectsCSV, "projects", enrich.MergeProjectsCSV)

	var out []byte
	if *indent {
		out, err = json.MarshalIndent(resume, "", "  ")
	} else {
		out, err = json.Marshal(resume)
	}
	if err != nil {
		log.Fatalf("encode json: %v", err)
	}
	out = append(out, '\n')

	if *outPath == "" {
		fmt.Print(string(out))
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func mergeCSV(resume *model.Resume, path, label string, merge func(*model.Resume, io.Reader) (bool, error)) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s csv: %v", label, err)
	}
	defer f.Close()
	if _, err := merge(resume, f); err != nil {
		log.Fatalf("merge %s csv: %v", label, err)
	}
}
