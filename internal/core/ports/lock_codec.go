package ports

import "go.trai.ch/relock/internal/core/domain"

// LockCodec defines the interface for decoding and encoding lock documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_codec.go -destination=mocks/mock_lock_codec.go -package=mocks
type LockCodec interface {
	// Parse decodes a lock document.
	Parse(data []byte) (*domain.LockDocument, error)

	// Serialize encodes a lock document in canonical form.
	// Serialize(Parse(Serialize(d))) must equal Serialize(d).
	Serialize(doc *domain.LockDocument) ([]byte, error)
}
