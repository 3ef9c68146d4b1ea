package ui

import (
	"strconv"

	"cloudmeet-client/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const EmptyRooms = "No rooms available. Create the first one!"

// RenderRooms draws the room list as a table. The delete action is only
// offered on rooms owned by the viewer; for everyone else the control
// simply does not exist.
func (s *Screen) RenderRooms(rooms []domain.Room, viewer domain.User) {
	if len(rooms) == 0 {
		s.println(EmptyRooms)
		return
	}

	table := tablewriter.NewWriter(s.w)
	table.SetHeader([]string{"ID", "Name", "Participants", "Created", "Actions"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := lo.Map(rooms, func(r domain.Room, _ int) []string {
		actions := "join"
		if r.OwnedBy(viewer) {
			actions = "join, delete"
		}
		return []string{
			strconv.Itoa(int(r.ID)),
			r.Name,
			strconv.Itoa(r.ParticipantsCount),
			r.CreatedAt.Local().Format("02.01.2006 15:04"),
			actions,
		}
	})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
