package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minionsoliver/snmp-switch/alias"
	"github.com/minionsoliver/snmp-switch/render"
	"github.com/minionsoliver/snmp-switch/session"
)

// statusName maps an ifOperStatus value to its MIB label.
func statusName(status uint64) string {
	switch status {
	case 1:
		return "up"
	case 2:
		return "down"
	case 3:
		return "testing"
	case 4:
		return "unknown"
	case 5:
		return "dormant"
	case 6:
		return "notPresent"
	case 7:
		return "lowerLayerDown"
	default:
		return fmt.Sprintf("status(%d)", status)
	}
}

// Ports renders the per-port interface report: name, status, speed,
// octet counters and the hosts learned on each port. 64-bit counters are
// preferred; on devices without the ifXTable the driver falls back to the
// 32-bit counters and labels the columns accordingly.
func Ports(q Querier, aliases alias.Table) (string, error) {
	base, err := q.WalkTable(
		session.OIDIfDescr,
		session.OIDIfOperStatus,
		session.OIDIfSpeed,
	)
	if err != nil {
		return "", err
	}

	width := 64
	counters, err := q.WalkTable(session.OIDIfHCInOctets, session.OIDIfHCOutOctets)
	if err == nil && len(counters) == 0 && len(base) > 0 {
		err = &session.CapabilityError{Table: "ifHCInOctets"}
	}
	var capErr *session.CapabilityError
	if errors.As(err, &capErr) {
		width = 32
		counters, err = q.WalkTable(session.OIDIfInOctets, session.OIDIfOutOctets)
	}
	if err != nil {
		return "", err
	}

	hosts, err := portHosts(q, len(base), aliases)
	if err != nil {
		return "", err
	}

	table := render.NewTable(
		"-Name",
		"-Status",
		"Speed",
		fmt.Sprintf("Octs In (%d)", width),
		fmt.Sprintf("Octs Out (%d)", width),
		"-Hosts",
	)
	for i, row := range base {
		if i >= len(counters) {
			break
		}
		speed, err := render.FormatSI(float64(row.Cells[2].Uint()), 0)
		if err != nil {
			return "", err
		}
		in, err := render.FormatSI(float64(counters[i].Cells[0].Uint()), 2)
		if err != nil {
			return "", err
		}
		out, err := render.FormatSI(float64(counters[i].Cells[1].Uint()), 2)
		if err != nil {
			return "", err
		}
		err = table.AddRow(
			row.Cells[0].String(),
			statusName(row.Cells[1].Uint()),
			speed,
			in,
			out,
			strings.Join(hosts[i], " "),
		)
		if err != nil {
			return "", err
		}
	}
	return table.Render(), nil
}

// portHosts walks the bridge forwarding table and collects the resolved
// host names learned on each port, indexed by 0-based port position.
func portHosts(q Querier, portCount int, aliases alias.Table) ([][]string, error) {
	hosts := make([][]string, portCount)
	fdb, err := q.WalkTable(session.OIDDot1dTpFdbPort)
	if err != nil {
		return nil, err
	}
	for _, entry := range fdb {
		mac, err := macFromIndex(entry.Index)
		if err != nil {
			return nil, err
		}
		port := int(entry.Cells[0].Uint()) - 1
		if port < 0 || port >= portCount {
			continue
		}
		hosts[port] = append(hosts[port], aliases.Resolve(mac))
	}
	return hosts, nil
}
