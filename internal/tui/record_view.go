package tui

import (
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
)

type viewState int

const (
	stateIdle viewState = iota
	stateEditing
	stateSubmitting
	stateError
)

func (s viewState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateEditing:
		return "editing"
	case stateSubmitting:
		return "submitting"
	case stateError:
		return "error"
	default:
		return "unknown"
	}
}

// recordView is the form state of the users page. It is a value type: every
// transition returns a new recordView and performs no I/O.
type recordView struct {
	state viewState
	// target is the id of the record being edited, empty for a new record.
	target      string
	form        models.UserForm
	fieldErrors validators.FormErrors
	message     string
}

// submitRequest is what a valid submit asks the caller to send. An empty id
// means create.
type submitRequest struct {
	id   string
	user models.User
}

func (r submitRequest) isUpdate() bool {
	return r.id != ""
}

// edit loads u into the form and targets it.
func (v recordView) edit(u models.User) recordView {
	if v.state == stateSubmitting {
		return v
	}
	return recordView{
		state:  stateEditing,
		target: u.ID,
		form:   models.NewUserForm(u),
	}
}

// input replaces the form contents after user typing. Field errors stay until
// the next submit.
func (v recordView) input(form models.UserForm) recordView {
	if v.state == stateSubmitting {
		return v
	}
	v.form = form
	v.state = stateEditing
	v.message = ""
	return v
}

// submit validates the form. On failure the view goes back to editing with
// field errors and ok is false; no request must be sent. A submit while one
// is in flight is ignored.
func (v recordView) submit() (next recordView, req submitRequest, ok bool) {
	if v.state == stateSubmitting {
		return v, submitRequest{}, false
	}

	if errs := validators.ValidateUserForm(v.form); !errs.Valid() {
		v.state = stateEditing
		v.fieldErrors = errs
		v.message = ""
		return v, submitRequest{}, false
	}

	v.state = stateSubmitting
	v.fieldErrors = nil
	v.message = ""
	return v, submitRequest{id: v.target, user: v.form.ToUser()}, true
}

// succeeded clears the form and the edit target.
func (v recordView) succeeded() recordView {
	return recordView{state: stateIdle}
}

// failed keeps the form so the operator can retry.
func (v recordView) failed(message string) recordView {
	v.state = stateError
	v.message = message
	return v
}

func (v recordView) clear() recordView {
	if v.state == stateSubmitting {
		return v
	}
	return recordView{state: stateIdle}
}

func (v recordView) submitting() bool {
	return v.state == stateSubmitting
}

func (v recordView) editing() bool {
	return v.target != ""
}
