package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minionsoliver/snmp-switch/render"
	"github.com/minionsoliver/snmp-switch/session"
	"github.com/minionsoliver/snmp-switch/vlan"
)

// VLANs renders the VLAN membership report: a summary line, then one row
// per VLAN with a U/T/E symbol for each switch port.
func VLANs(q Querier) (string, error) {
	counts, err := q.Get(session.OIDDot1qMaxSupportedVlans, session.OIDDot1qNumVlans)
	if err != nil {
		return "", err
	}
	if len(counts) != 2 {
		return "", fmt.Errorf("report: VLAN counts: got %d values, want 2", len(counts))
	}

	// The per-port PVID table has one row per switch port.
	pvid, err := q.WalkTable(session.OIDDot1qPvid)
	if err != nil {
		return "", err
	}
	portCount := len(pvid)
	if portCount > vlan.MaxPorts {
		return "", fmt.Errorf("report: %d ports: %w", portCount, vlan.ErrTooManyPorts)
	}

	rows, err := q.WalkTable(
		session.OIDDot1qVlanStaticName,
		session.OIDDot1qVlanStaticEgressPorts,
		session.OIDDot1qVlanStaticUntaggedPorts,
	)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "VLANs: %d configured, %d supported\n\n", counts[1].Uint(), counts[0].Uint())

	headers := make([]string, 0, 2+portCount)
	headers = append(headers, "ID", "-Name")
	for p := 1; p <= portCount; p++ {
		headers = append(headers, strconv.Itoa(p))
	}
	table := render.NewTable(headers...)

	for _, row := range rows {
		id, err := strconv.Atoi(row.Index)
		if err != nil {
			return "", fmt.Errorf("report: VLAN index %q is not an id", row.Index)
		}
		decoded, err := vlan.DecodePorts(
			id,
			row.Cells[0].String(),
			vlan.PortListMask(row.Cells[1].Bytes()),
			vlan.PortListMask(row.Cells[2].Bytes()),
			portCount,
		)
		if err != nil {
			return "", err
		}
		if err := table.AddRow(decoded...); err != nil {
			return "", err
		}
	}

	b.WriteString(table.Render())
	return b.String(), nil
}
