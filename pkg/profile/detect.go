package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const productNamePath = "/sys/class/dmi/id/product_name"

// ProductName reads the machine's DMI product name from sysfs.
func ProductName() (string, error) {
	b, err := os.ReadFile(productNamePath)
	if err != nil {
		return "", fmt.Errorf("failed to read product name: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Detect matches the product name against the built-in profiles and returns
// the first match. The product name is supplied as a func so tests never
// touch sysfs; pass ProductName for real hardware.
func Detect(productName func() (string, error)) (*Profile, error) {
	return DetectIn(BuiltIn, productName)
}

// DetectIn is Detect over a caller-supplied search path.
func DetectIn(search []*Profile, productName func() (string, error)) (*Profile, error) {
	name, err := productName()
	if err != nil {
		return nil, err
	}

	for _, p := range search {
		for _, want := range p.ProductNames {
			if name == want {
				logrus.Debugf("product name %q matched profile %s", name, p.Name)
				return p, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: product name %q", ErrNotDetected, name)
}
