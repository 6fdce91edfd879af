package web

// page carries the fields every rendered view needs: the document
// title, the active nav entry and the pending one-shot notification.
type page struct {
	Title  string
	Active string
	Flash  *Flash
}

func newPage(title, active string, flash *Flash) page {
	return page{Title: title, Active: active, Flash: flash}
}
