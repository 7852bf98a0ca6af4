// Package subnet decides which addresses may be assigned by hand inside the allowed subnet.
package subnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/netip"
)

// Rejection reasons, in the order they are checked.
var (
	ErrMalformed          = errors.New("malformed IP address")
	ErrNotPrivate         = errors.New("address is not a private address")
	ErrOutsideSubnet      = errors.New("address is outside the allowed subnet")
	ErrNetworkOrBroadcast = errors.New("address is the network or broadcast address")
	ErrReserved           = errors.New("address is reserved for the DNS server")
)

// Validator checks candidate addresses against an allowed subnet and a reserved address.
type Validator struct {
	allowed  netip.Prefix
	reserved netip.Addr
	out      io.Writer
}

// NewValidator creates a validator. Rejection reasons are printed to out.
func NewValidator(allowed netip.Prefix, reserved netip.Addr, out io.Writer) *Validator {
	return &Validator{
		allowed:  allowed.Masked(),
		reserved: reserved,
		out:      out,
	}
}

// Validate parses candidate and returns it if every check passes.
// The returned error wraps the first failing reason.
func (v *Validator) Validate(candidate string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(candidate)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrMalformed, candidate)
	}
	if !ip.IsPrivate() {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrNotPrivate, ip)
	}
	if !v.allowed.Contains(ip) {
		return netip.Addr{}, fmt.Errorf("%w: %s not in %s", ErrOutsideSubnet, ip, v.allowed)
	}
	if ip == NetworkAddress(v.allowed) || ip == BroadcastAddress(v.allowed) {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrNetworkOrBroadcast, ip)
	}
	if ip == v.reserved {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrReserved, ip)
	}
	return ip, nil
}

// IsValidIP reports whether candidate is assignable, printing the reason when it is not.
func (v *Validator) IsValidIP(candidate string) bool {
	if _, err := v.Validate(candidate); err != nil {
		fmt.Fprintln(v.out, v.Message(err))
		return false
	}
	return true
}

// Message renders a rejection for the user.
func (v *Validator) Message(err error) string {
	switch {
	case errors.Is(err, ErrMalformed):
		return "Error: invalid IP address format."
	case errors.Is(err, ErrNotPrivate):
		return "Error: IP address must be a private address (e.g., 192.168.x.x)."
	case errors.Is(err, ErrOutsideSubnet):
		return fmt.Sprintf("Error: IP address must be inside the allowed subnet (%s).", v.allowed)
	case errors.Is(err, ErrNetworkOrBroadcast):
		return "Error: the network or broadcast address cannot be used."
	case errors.Is(err, ErrReserved):
		return "Error: the DNS server address cannot be used."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// IsValidIP checks candidate against allowed and reserved without keeping a Validator around.
func IsValidIP(candidate string, allowed netip.Prefix, reserved netip.Addr, out io.Writer) bool {
	return NewValidator(allowed, reserved, out).IsValidIP(candidate)
}

// NetworkAddress returns the first address of p.
func NetworkAddress(p netip.Prefix) netip.Addr {
	return p.Masked().Addr()
}

// BroadcastAddress returns the last address of an IPv4 prefix.
func BroadcastAddress(p netip.Prefix) netip.Addr {
	network := NetworkAddress(p)
	if !network.Is4() {
		return netip.Addr{}
	}
	b := network.As4()
	hostBits := uint32(0xffffffff) >> p.Bits()
	binary.BigEndian.PutUint32(b[:], binary.BigEndian.Uint32(b[:])|hostBits)
	return netip.AddrFrom4(b)
}

// Gateway returns the address following the network address, used as the default route.
func Gateway(p netip.Prefix) netip.Addr {
	return NetworkAddress(p).Next()
}

// IsAssignable reports whether addr is a usable host address of p (not network or broadcast).
func IsAssignable(p netip.Prefix, addr netip.Addr) bool {
	return p.Contains(addr) && addr != NetworkAddress(p) && addr != BroadcastAddress(p)
}
