package module

import "seatime/internal/services/seatime/domain"

// Ports defines seatime module ports exposed via the registry
type Ports struct {
	Check   domain.CheckPort
	Entries domain.EntriesPort
	Vessels domain.VesselsPort
}
