package packers

import "obsid/internal/dimpack"

// RubinName is the short name the host catalog selects the built-in
// mixed-radix strategy by.
const RubinName = "rubin"

// rubinDriver adapts internal/dimpack to the Driver interface. The
// zero-size value is comparable, so repeated registration is idempotent.
type rubinDriver struct{}

func (rubinDriver) New(cfg dimpack.Config) (Packer, error) {
	return dimpack.NewPacker(cfg)
}

func init() {
	if err := Register(RubinName, rubinDriver{}); err != nil {
		panic(err)
	}
}
