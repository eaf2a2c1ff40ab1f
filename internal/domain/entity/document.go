package entity

import "time"

// Estados de verificación de un documento.
const (
	DocumentPending  = "PENDING"
	DocumentVerified = "VERIFIED"
	DocumentRejected = "REJECTED"
)

// Document es un documento aportado por un deudor (comprobantes, soportes).
// DocumentPath es la clave de almacenamiento, generada con UUID al subir.
type Document struct {
	ID                 int64
	DebtorID           int64
	DocumentType       string
	DocumentPath       string
	UploadDate         time.Time
	VerificationStatus string
}
