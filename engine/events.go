package engine

import "xdao.co/plh/model"

// Events is the output contract toward the presentation layer. All
// notifications are synchronous with the triggering input call; sinks must
// not call back into the engine while handling one.
type Events interface {
	EntropyChanged(coverage int)
	CertificateIssued(rec model.CertificateRecord)
	IssueFailed(cerr *model.CodedError)
	VerdictComputed(postID string, verdict model.Verdict)
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) EntropyChanged(int)                        {}
func (NopEvents) CertificateIssued(model.CertificateRecord) {}
func (NopEvents) IssueFailed(*model.CodedError)             {}
func (NopEvents) VerdictComputed(string, model.Verdict)     {}
