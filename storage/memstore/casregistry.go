package memstore

import (
	"flag"

	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/casregistry"
)

func init() {
	casregistry.MustRegister(casregistry.Backend{
		Name:          "mem",
		Description:   "In-memory CAS (non-durable; lifetime of the process)",
		Usage:         casregistry.UsageCLI | casregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (storage.CAS, func() error, error) {
			return New(), nil, nil
		},
	})
}
