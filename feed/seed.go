package feed

import (
	"time"

	"xdao.co/plh/contentaddr"
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
)

const (
	seedBotText   = "Check out this amazing new product! 🤖 #ad #sponsored #definitely-not-a-bot"
	seedHumanText = "Just finished my morning run! The sunrise was absolutely beautiful today. 🌅"
)

// SeedDemo populates the store with the demonstration feed: an unverified
// bot post with no certificate, and a verified human post whose certificate
// was restored from an earlier session. The restored certificate's
// fingerprint is computed from the post's actual text so that verification
// holds until the post is tampered with.
func (s *Store) SeedDemo() {
	s.Add("AI_ContentBot_3000", payload.Text(seedBotText), nil)

	human := payload.Text(seedHumanText)
	cert := stamp.Restore(model.CertificateRecord{
		Fingerprint:    fingerprint.Of(human),
		ContentType:    model.ContentText,
		IssuedAt:       time.Now().Add(-time.Hour).UnixMilli(),
		ProofID:        "zkp-verified-human-12345",
		ContentAddress: contentaddr.OfPayload(human),
	})
	s.Add("Sarah_Chen", human, cert)
}
