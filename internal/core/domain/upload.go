package domain

// MaxProofSize is the largest payment proof accepted, in bytes.
const MaxProofSize = 2 << 20

const ProofFolder = "payment-proofs"

var AllowedProofTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

// Upload is a file received from a client, already read into memory.
type Upload struct {
	Filename string
	Data     []byte
}

func (u Upload) Size() int64 {
	return int64(len(u.Data))
}
