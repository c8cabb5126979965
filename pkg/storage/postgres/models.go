package postgres

import (
	"arbeit/pkg/domain"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONB holds the raw text of a jsonb column. It is sent as a string so query
// builders quote it instead of expanding the byte slice.
type JSONB []byte

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

func (j *JSONB) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}

	return nil
}

type PgUser struct {
	ID           uuid.UUID    `db:"id"            goqu:"skipinsert"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	Role         string       `db:"role"`
	Profile      JSONB        `db:"profile"`
	CreatedAt    time.Time    `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    sql.NullTime `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() (*domain.User, error) {
	var profile domain.Profile
	if len(p.Profile) > 0 {
		if err := json.Unmarshal(p.Profile, &profile); err != nil {
			return nil, fmt.Errorf("could not unmarshal user profile: %w", err)
		}
	}

	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Role:         domain.Role(p.Role),
		Profile:      profile,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}, nil
}

func (p *PgUser) FromDomain(user domain.User) error {
	profile, err := json.Marshal(user.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal user profile: %w", err)
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(role),
		Profile:      profile,
		CreatedAt:    user.CreatedAt,
	}

	return nil
}

type PgBusiness struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	BID          string    `db:"bid"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	CompanyName  string    `db:"company_name"`
	Address      string    `db:"address"`
	CompanyEmail string    `db:"company_email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

func (p *PgBusiness) ToDomain() *domain.Business {
	return &domain.Business{
		ID:           domain.BusinessID(p.ID),
		BID:          p.BID,
		Name:         p.Name,
		Email:        p.Email,
		CompanyName:  p.CompanyName,
		Address:      p.Address,
		CompanyEmail: p.CompanyEmail,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgBusiness) FromDomain(business domain.Business) {
	*p = PgBusiness{
		ID:           uuid.UUID(business.ID),
		BID:          business.BID,
		Name:         business.Name,
		Email:        business.Email,
		CompanyName:  business.CompanyName,
		Address:      business.Address,
		CompanyEmail: business.CompanyEmail,
		PasswordHash: business.PasswordHash,
	}
}

type PgJob struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	JobID        string    `db:"job_id"`
	BID          string    `db:"bid"`
	CompanyName  string    `db:"company_name"`
	CompanyEmail string    `db:"company_email"`

	Title         string `db:"title"`
	Location      string `db:"location"`
	JobType       string `db:"job_type"`
	Department    string `db:"department"`
	Description   string `db:"description"`
	Requirements  string `db:"requirements"`
	Benefits      string `db:"benefits"`
	Qualification string `db:"qualification"`

	SalaryMin  int64 `db:"salary_min"`
	SalaryMax  int64 `db:"salary_max"`
	HideSalary bool  `db:"hide_salary"`

	HiringProcess      JSONB  `db:"hiring_process"`
	ScreeningQuestions JSONB  `db:"screening_questions"`
	AdditionalInfo     string `db:"additional_info"`

	Status     string `db:"status"`
	Applicants int    `db:"applicants"`

	PostedDate time.Time    `db:"posted_date"`
	UpdatedAt  sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgJob) ToDomain() (*domain.Job, error) {
	var hiringProcess, screeningQuestions []string
	if err := unmarshalList(p.HiringProcess, &hiringProcess); err != nil {
		return nil, fmt.Errorf("could not unmarshal hiring process: %w", err)
	}
	if err := unmarshalList(p.ScreeningQuestions, &screeningQuestions); err != nil {
		return nil, fmt.Errorf("could not unmarshal screening questions: %w", err)
	}

	return &domain.Job{
		ID:                 p.ID,
		JobID:              p.JobID,
		BID:                p.BID,
		CompanyName:        p.CompanyName,
		CompanyEmail:       p.CompanyEmail,
		Title:              p.Title,
		Location:           p.Location,
		JobType:            p.JobType,
		Department:         p.Department,
		Description:        p.Description,
		Requirements:       p.Requirements,
		Benefits:           p.Benefits,
		Qualification:      p.Qualification,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
		HideSalary:         p.HideSalary,
		HiringProcess:      hiringProcess,
		ScreeningQuestions: screeningQuestions,
		AdditionalInfo:     p.AdditionalInfo,
		Status:             domain.JobStatus(p.Status),
		Applicants:         p.Applicants,
		PostedDate:         p.PostedDate,
		UpdatedAt:          p.UpdatedAt.Time,
	}, nil
}

func (p *PgJob) FromDomain(job domain.Job) error {
	hiringProcess, err := marshalList(job.HiringProcess)
	if err != nil {
		return fmt.Errorf("could not marshal hiring process: %w", err)
	}
	screeningQuestions, err := marshalList(job.ScreeningQuestions)
	if err != nil {
		return fmt.Errorf("could not marshal screening questions: %w", err)
	}

	postedDate := job.PostedDate
	if postedDate.IsZero() {
		postedDate = time.Now()
	}

	*p = PgJob{
		ID:                 job.ID,
		JobID:              job.JobID,
		BID:                job.BID,
		CompanyName:        job.CompanyName,
		CompanyEmail:       job.CompanyEmail,
		Title:              job.Title,
		Location:           job.Location,
		JobType:            job.JobType,
		Department:         job.Department,
		Description:        job.Description,
		Requirements:       job.Requirements,
		Benefits:           job.Benefits,
		Qualification:      job.Qualification,
		SalaryMin:          job.SalaryMin,
		SalaryMax:          job.SalaryMax,
		HideSalary:         job.HideSalary,
		HiringProcess:      hiringProcess,
		ScreeningQuestions: screeningQuestions,
		AdditionalInfo:     job.AdditionalInfo,
		Status:             string(job.Status),
		Applicants:         job.Applicants,
		PostedDate:         postedDate,
	}

	return nil
}

type PgApplication struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`
	JobID  string    `db:"job_id"`

	FullName        string `db:"full_name"`
	Email           string `db:"email"`
	Phone           string `db:"phone"`
	CoverLetter     string `db:"cover_letter"`
	Experience      string `db:"experience"`
	CurrentCompany  string `db:"current_company"`
	CurrentJobTitle string `db:"current_job_title"`
	Education       string `db:"education"`
	LinkedinURL     string `db:"linkedin_url"`
	PortfolioURL    string `db:"portfolio_url"`

	Status         string        `db:"status"`
	ResumeID       uuid.NullUUID `db:"resume_id"`
	ResumeFileName string        `db:"resume_file_name"`

	AppliedDate  time.Time    `db:"applied_date"`
	UpdatedDate  time.Time    `db:"updated_date"`
	ReviewedDate sql.NullTime `db:"reviewed_date" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() *domain.Application {
	var resumeID *domain.ResumeID
	if p.ResumeID.Valid {
		id := domain.ResumeID(p.ResumeID.UUID)
		resumeID = &id
	}

	return &domain.Application{
		ID:              domain.ApplicationID(p.ID),
		UserID:          domain.UserID(p.UserID),
		JobID:           p.JobID,
		FullName:        p.FullName,
		Email:           p.Email,
		Phone:           p.Phone,
		CoverLetter:     p.CoverLetter,
		Experience:      p.Experience,
		CurrentCompany:  p.CurrentCompany,
		CurrentJobTitle: p.CurrentJobTitle,
		Education:       p.Education,
		LinkedinURL:     p.LinkedinURL,
		PortfolioURL:    p.PortfolioURL,
		Status:          domain.ApplicationStatus(p.Status),
		ResumeID:        resumeID,
		ResumeFileName:  p.ResumeFileName,
		AppliedDate:     p.AppliedDate,
		UpdatedDate:     p.UpdatedDate,
		ReviewedDate:    p.ReviewedDate.Time,
	}
}

func (p *PgApplication) FromDomain(application domain.Application) {
	var resumeID uuid.NullUUID
	if application.ResumeID != nil {
		resumeID = uuid.NullUUID{UUID: uuid.UUID(*application.ResumeID), Valid: true}
	}

	now := time.Now()
	appliedDate, updatedDate := application.AppliedDate, application.UpdatedDate
	if appliedDate.IsZero() {
		appliedDate = now
	}
	if updatedDate.IsZero() {
		updatedDate = appliedDate
	}

	status := application.Status
	if status == "" {
		status = domain.ApplicationStatusPending
	}

	*p = PgApplication{
		ID:              uuid.UUID(application.ID),
		UserID:          uuid.UUID(application.UserID),
		JobID:           application.JobID,
		FullName:        application.FullName,
		Email:           application.Email,
		Phone:           application.Phone,
		CoverLetter:     application.CoverLetter,
		Experience:      application.Experience,
		CurrentCompany:  application.CurrentCompany,
		CurrentJobTitle: application.CurrentJobTitle,
		Education:       application.Education,
		LinkedinURL:     application.LinkedinURL,
		PortfolioURL:    application.PortfolioURL,
		Status:          string(status),
		ResumeID:        resumeID,
		ResumeFileName:  application.ResumeFileName,
		AppliedDate:     appliedDate,
		UpdatedDate:     updatedDate,
	}
}

type PgResume struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	UserID      uuid.UUID `db:"user_id"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	Size        int64     `db:"size"`
	Data        []byte    `db:"data"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgResume) ToDomain() *domain.Resume {
	return &domain.Resume{
		ID:          domain.ResumeID(p.ID),
		UserID:      domain.UserID(p.UserID),
		FileName:    p.FileName,
		ContentType: p.ContentType,
		Size:        p.Size,
		Data:        p.Data,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgResume) FromDomain(resume domain.Resume) {
	size := resume.Size
	if size == 0 {
		size = int64(len(resume.Data))
	}

	*p = PgResume{
		ID:          uuid.UUID(resume.ID),
		UserID:      uuid.UUID(resume.UserID),
		FileName:    resume.FileName,
		ContentType: resume.ContentType,
		Size:        size,
		Data:        resume.Data,
	}
}

func pgJobsToDomain(jobs []PgJob) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		d, err := job.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgApplicationsToDomain(applications []PgApplication) []domain.Application {
	out := make([]domain.Application, 0, len(applications))
	for _, application := range applications {
		out = append(out, *application.ToDomain())
	}

	return out
}

// marshalList encodes nil slices as an empty JSON array to satisfy NOT NULL columns.
func marshalList(list []string) (JSONB, error) {
	if list == nil {
		list = []string{}
	}

	return json.Marshal(list)
}

func unmarshalList(raw JSONB, out *[]string) error {
	if len(raw) == 0 {
		*out = []string{}

		return nil
	}

	return json.Unmarshal(raw, out)
}
