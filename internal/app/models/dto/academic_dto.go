package dto

import "github.com/yigit/schooladmin/internal/app/models"

// EnrolmentForm is submitted to add or edit an enrolment.
type EnrolmentForm struct {
	YearEnrol string `json:"yearEnrol" binding:"required,max=60"`
}

// Apply copies the form onto e.
func (f EnrolmentForm) Apply(e *models.Enrolment) { e.YearEnrol = f.YearEnrol }

// NewEnrolmentForm pre-populates a form from e.
func NewEnrolmentForm(e *models.Enrolment) EnrolmentForm {
	return EnrolmentForm{YearEnrol: e.YearEnrol}
}

// IncludeForm is submitted to add or edit an include.
type IncludeForm struct {
	TermEnrol string `json:"termEnrol" binding:"required,max=60"`
}

// Apply copies the form onto i.
func (f IncludeForm) Apply(i *models.Include) { i.TermEnrol = f.TermEnrol }

// NewIncludeForm pre-populates a form from i.
func NewIncludeForm(i *models.Include) IncludeForm {
	return IncludeForm{TermEnrol: i.TermEnrol}
}

// ModuleForm is submitted to add or edit a module.
type ModuleForm struct {
	ModuleName    string `json:"moduleName" binding:"required,max=60"`
	Description   string `json:"description" binding:"max=200"`
	YearCompleted int    `json:"yearCompleted" binding:"omitempty,min=1900"`
	TakeID        *int64 `json:"takeId,omitempty" binding:"omitempty,gt=0"`
	TeachID       *int64 `json:"teachId,omitempty" binding:"omitempty,gt=0"`
	IncludeID     *int64 `json:"includeId,omitempty" binding:"omitempty,gt=0"`
}

// Apply copies the form onto m.
func (f ModuleForm) Apply(m *models.Module) {
	m.ModuleName = f.ModuleName
	m.Description = f.Description
	m.YearCompleted = f.YearCompleted
	m.TakeID = f.TakeID
	m.TeachID = f.TeachID
	m.IncludeID = f.IncludeID
}

// NewModuleForm pre-populates a form from m.
func NewModuleForm(m *models.Module) ModuleForm {
	return ModuleForm{
		ModuleName:    m.ModuleName,
		Description:   m.Description,
		YearCompleted: m.YearCompleted,
		TakeID:        m.TakeID,
		TeachID:       m.TeachID,
		IncludeID:     m.IncludeID,
	}
}

// OfferForm is submitted to add or edit an offer.
type OfferForm struct {
	OfferYear int `json:"offerYear" binding:"required,min=1900"`
}

// Apply copies the form onto o.
func (f OfferForm) Apply(o *models.Offer) { o.OfferYear = f.OfferYear }

// NewOfferForm pre-populates a form from o.
func NewOfferForm(o *models.Offer) OfferForm {
	return OfferForm{OfferYear: o.OfferYear}
}

// TakeForm carries no fields; a take only exists to be linked to.
type TakeForm struct{}

// Apply is a no-op.
func (f TakeForm) Apply(*models.Take) {}

// NewTakeForm returns an empty form.
func NewTakeForm(*models.Take) TakeForm {
	return TakeForm{}
}

// TutorForm is submitted to add or edit a tutor.
type TutorForm struct {
	TutDescription string `json:"tutDescription" binding:"required,max=200"`
}

// Apply copies the form onto t.
func (f TutorForm) Apply(t *models.Tutor) { t.TutDescription = f.TutDescription }

// NewTutorForm pre-populates a form from t.
func NewTutorForm(t *models.Tutor) TutorForm {
	return TutorForm{TutDescription: t.TutDescription}
}

// LecturerForm is submitted to add or edit a lecturer.
type LecturerForm struct {
	FirstName     string `json:"lecturerFname" binding:"required,max=60"`
	LastName      string `json:"lecturerLname" binding:"required,max=60"`
	YearJoined    int    `json:"yearJoined" binding:"omitempty,min=1900"`
	ContactMobile string `json:"contactMobile" binding:"omitempty,numeric,max=60"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email,max=60"`
	TeachID       *int64 `json:"teachId,omitempty" binding:"omitempty,gt=0"`
	TutorID       *int64 `json:"tutorId,omitempty" binding:"omitempty,gt=0"`
}

// Apply copies the form onto l.
func (f LecturerForm) Apply(l *models.Lecturer) {
	l.FirstName = f.FirstName
	l.LastName = f.LastName
	l.YearJoined = f.YearJoined
	l.ContactMobile = f.ContactMobile
	l.ContactEmail = f.ContactEmail
	l.TeachID = f.TeachID
	l.TutorID = f.TutorID
}

// NewLecturerForm pre-populates a form from l.
func NewLecturerForm(l *models.Lecturer) LecturerForm {
	return LecturerForm{
		FirstName:     l.FirstName,
		LastName:      l.LastName,
		YearJoined:    l.YearJoined,
		ContactMobile: l.ContactMobile,
		ContactEmail:  l.ContactEmail,
		TeachID:       l.TeachID,
		TutorID:       l.TutorID,
	}
}

// TeachForm is submitted to add or edit a teach.
type TeachForm struct {
	TeachDate string `json:"teachDate" binding:"required,max=60"`
}

// Apply copies the form onto t.
func (f TeachForm) Apply(t *models.Teach) { t.TeachDate = f.TeachDate }

// NewTeachForm pre-populates a form from t.
func NewTeachForm(t *models.Teach) TeachForm {
	return TeachForm{TeachDate: t.TeachDate}
}
