package product

import "encoding/json"

type ChangeStatus string

const (
	ChangeUnchanged ChangeStatus = "unchanged"
	ChangeNew       ChangeStatus = "new"
	ChangeModified  ChangeStatus = "modified"
	ChangeDeleted   ChangeStatus = "deleted"
)

// MarkNew flags a locally created product that does not exist on the
// server yet.
func (p *Product) MarkNew() {
	p.isNew = true
	p.isModified = false
	p.isDeleted = false
}

// MarkModified flags an edit to a previously synced product. A product
// that is still new stays new: it will be created, not updated.
func (p *Product) MarkModified() {
	if !p.isNew {
		p.isModified = true
	}
}

func (p *Product) MarkDeleted() {
	p.isDeleted = true
	p.isModified = false
}

func (p *Product) IsChanged() bool {
	return p.isNew || p.isModified || p.isDeleted
}

func (p *Product) ChangeStatus() ChangeStatus {
	switch {
	case p.isNew:
		return ChangeNew
	case p.isDeleted:
		return ChangeDeleted
	case p.isModified:
		return ChangeModified
	default:
		return ChangeUnchanged
	}
}

// SaveOriginalData snapshots the current remote payload for later diffing.
func (p *Product) SaveOriginalData() {
	p.original, _ = json.Marshal(p.ToRemote())
}

// OriginalData returns the snapshot taken at the last successful sync,
// or nil when the product was never synced.
func (p *Product) OriginalData() []byte {
	return p.original
}

// ResetChangeFlags clears all lifecycle flags after a successful sync and
// refreshes the snapshot.
func (p *Product) ResetChangeFlags() {
	p.isNew = false
	p.isModified = false
	p.isDeleted = false
	p.SaveOriginalData()
}
