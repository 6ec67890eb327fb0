package usb

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// SysfsScanner reads the USB devices the Linux kernel exposes under sysfs.
type SysfsScanner struct {
	root string
}

// NewSysfsScanner builds a scanner rooted at root (DefaultSysfsRoot when empty).
func NewSysfsScanner(root string) *SysfsScanner {
	if root == "" {
		root = domain.DefaultSysfsRoot
	}
	return &SysfsScanner{root: root}
}

// Name implements ports.BusScanner.
func (s *SysfsScanner) Name() string {
	return domain.BackendSysfs
}

// Root returns the directory being scanned.
func (s *SysfsScanner) Root() string {
	return s.root
}

// Present implements ports.BusScanner.
func (s *SysfsScanner) Present(ctx context.Context, id domain.USBID) (bool, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.root, err)
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		got, ok := readProduct(filepath.Join(s.root, entry.Name(), "uevent"))
		if !ok {
			continue
		}
		if got == id {
			return true, nil
		}
	}
	return false, nil
}

// readProduct extracts the vendor/product pair from a uevent file's
// PRODUCT=<vid>/<pid>/<bcdDevice> line.
func readProduct(path string) (domain.USBID, bool) {
	f, err := os.Open(path)
	if err != nil {
		return domain.USBID{}, false
	}
	defer f.Close()

	const productPrefix = "PRODUCT="
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, productPrefix) {
			continue
		}
		return parseProduct(strings.TrimPrefix(line, productPrefix))
	}
	return domain.USBID{}, false
}

func parseProduct(value string) (domain.USBID, bool) {
	parts := strings.Split(value, "/")
	if len(parts) < 2 {
		return domain.USBID{}, false
	}
	vendor, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return domain.USBID{}, false
	}
	product, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return domain.USBID{}, false
	}
	return domain.USBID{Vendor: uint16(vendor), Product: uint16(product)}, true
}

var _ ports.BusScanner = (*SysfsScanner)(nil)
