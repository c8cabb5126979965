// Package domain contains the core entities of the job board: candidates,
// businesses, job postings, applications and résumés. The types are free of
// infrastructure concerns so storage, services and handlers can share them.
package domain
