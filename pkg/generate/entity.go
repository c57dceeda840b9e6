package generate

import (
	"context"

	"github.com/artem13815/ai-service/pkg/nlp"
)

const (
	MaxMessageLength = 5000
	MaxNameLength    = 100
)

// PatientContext — необязательные сведения о пациенте для одного запроса.
type PatientContext struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	MedicalNotes *string `json:"medicalNotes,omitempty"`
}

// Notes возвращает заметки или пустую строку, если их нет.
func (p *PatientContext) Notes() string {
	if p == nil || p.MedicalNotes == nil {
		return ""
	}
	return *p.MedicalNotes
}

// Request — входящее сообщение пациента.
type Request struct {
	Message        string          `json:"message" validate:"required,min=1,max=5000"`
	PatientContext *PatientContext `json:"patientContext,omitempty"`
}

// Normalize returns a copy with every string field trimmed.
func (r Request) Normalize() Request {
	out := Request{Message: nlp.Clean(r.Message)}
	if r.PatientContext != nil {
		out.PatientContext = &PatientContext{
			Name:         nlp.Clean(r.PatientContext.Name),
			MedicalNotes: nlp.CleanPtr(r.PatientContext.MedicalNotes),
		}
	}
	return out
}

// Response — единственный ответ на запрос.
type Response struct {
	Reply string `json:"reply"`
}

// UseCase — сценарий генерации ответа пациенту.
type UseCase interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
