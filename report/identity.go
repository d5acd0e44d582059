package report

import (
	"fmt"
	"strings"

	"github.com/minionsoliver/snmp-switch/session"
)

// Identity renders the device identity report: name, location,
// description and uptime from the system group.
func Identity(q Querier) (string, error) {
	values, err := q.Get(
		session.OIDSysName,
		session.OIDSysLocation,
		session.OIDSysDescr,
		session.OIDSysUpTime,
	)
	if err != nil {
		return "", err
	}
	if len(values) != 4 {
		return "", fmt.Errorf("report: system group: got %d values, want 4", len(values))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name : %s\n", values[0])
	fmt.Fprintf(&b, "Location : %s\n", values[1])
	fmt.Fprintf(&b, "Descr : %s\n", values[2])
	fmt.Fprintf(&b, "Uptime : %s\n", formatUptime(values[3].Uint()))
	return b.String(), nil
}
