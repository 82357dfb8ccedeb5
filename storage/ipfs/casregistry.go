package ipfs

import (
	"flag"
	"os"

	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/casregistry"
)

var (
	flagBin  string
	flagPath string
)

func init() {
	casregistry.MustRegister(casregistry.Backend{
		Name:        "ipfs",
		Description: "Local Kubo IPFS repo (shells out to the 'ipfs' CLI)",
		Usage:       casregistry.UsageCLI | casregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagBin, "ipfs-bin", "", "Path to the ipfs binary (for --backend=ipfs; default 'ipfs')")
			fs.StringVar(&flagPath, "ipfs-path", "", "IPFS repo directory (for --backend=ipfs; default ~/.ipfs)")
		},
		Open: func() (storage.CAS, func() error, error) {
			opts := Options{Bin: flagBin}
			if flagPath != "" {
				opts.Env = append(os.Environ(), "IPFS_PATH="+flagPath)
			}
			return New(opts), nil, nil
		},
	})
}
