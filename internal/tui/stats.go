package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"pointview/internal/cloud"
)

func newStatsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 9},
			{Title: "Value", Width: 22},
		}),
		table.WithFocused(false),
		table.WithHeight(7),
	)
	return t
}

// statsRows formats a stats record for the panel.
func statsRows(st *cloud.ShapeStats) []table.Row {
	if st == nil {
		return nil
	}
	return []table.Row{
		{"Points", fmt.Sprintf("%d", st.PointCount)},
		{"NN avg", fmt.Sprintf("%.4f", st.NearestNeighborAvg)},
		{"Centroid", fmt.Sprintf("%.3f, %.3f, %.3f", st.Centroid.X, st.Centroid.Y, st.Centroid.Z)},
		{"Bounds", fmt.Sprintf("%.3f × %.3f × %.3f", st.BoundingBox.Dimensions.X, st.BoundingBox.Dimensions.Y, st.BoundingBox.Dimensions.Z)},
		{"Variance", fmt.Sprintf("%.4f, %.4f, %.4f", st.Variance.X, st.Variance.Y, st.Variance.Z)},
	}
}

func (m *Model) refreshStats() {
	m.tbl.SetRows(statsRows(m.store.Session().Stats))
}
