// qrgen writes one QR PNG per roster member, for printing or manual
// distribution outside the mail pipeline.
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"fraternos-backend/internal/notify"
	"fraternos-backend/internal/qrcode"
	"fraternos-backend/internal/roster"
)

func main() {
	rosterPath := flag.String("roster", "data/roster.csv", "roster CSV path")
	outDir := flag.String("out", "qr_codes", "output directory")
	committee := flag.String("committee", "", "limit to one committee")
	flag.Parse()

	log := logrus.New()

	dir, err := roster.Load(*rosterPath)
	if err != nil {
		log.Fatalf("roster load failed: %v", err)
	}

	members := dir.Members()
	if *committee != "" {
		members = dir.Committee(*committee)
	}
	if len(members) == 0 {
		log.Fatal("no members matched")
	}

	written := 0
	for _, member := range members {
		filename := "QR_" + notify.ShortName(member.Name)
		path, err := qrcode.Generate(member.ID, *outDir, filename)
		if err != nil {
			log.WithField("member", member.ID).Errorf("qr generation failed: %v", err)
			continue
		}
		log.WithField("path", path).Debug("qr written")
		written++
	}
	log.Infof("%d of %d QR codes written to %s", written, len(members), *outDir)
}
