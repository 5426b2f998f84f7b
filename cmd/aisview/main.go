// Command aisview is a live terminal dashboard of tracked vessels,
// refreshed as AIS position/voyage-data messages arrive on stdin.
// Grounded on Regentag-go1090/main.go's gocui status-bar-plus-
// scrolling-list layout and update loop, applied to vessels instead of
// aircraft and fed by parser.Parser instead of a Mode S decoder.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/jroimartin/gocui"

	"github.com/vesselwatch/aisdecode/nmea"
	"github.com/vesselwatch/aisdecode/parser"
)

const vesselTTL = 5 * time.Minute

type context struct {
	p       *parser.Parser
	tracker *Tracker
}

func newContext() *context {
	return &context{
		p:       parser.New(),
		tracker: NewTracker(vesselTTL),
	}
}

func (ctx *context) update(g *gocui.Gui) error {
	status, err := g.View("status")
	if err != nil {
		return err
	}
	status.Clear()
	fmt.Fprintf(status, " vessels: %02d  last update: %s\n",
		ctx.tracker.Count(), time.Now().Format("2006-01-02 15:04:05"))

	list, err := g.View("list")
	if err != nil {
		return err
	}
	list.Clear()
	fmt.Fprintln(list, " MMSI        NAME                  LAT      LON    SOG   COG  SEEN")
	fmt.Fprintln(list, " ====================================================================")

	vessels := ctx.tracker.Vessels()
	sort.Slice(vessels, func(i, j int) bool { return vessels[i].MMSI < vessels[j].MMSI })
	for _, v := range vessels {
		fmt.Fprintf(list, " %-9d   %-20s  %7s  %7s  %5s  %5s  %s\n",
			uint32(v.MMSI), v.Name, formatCoord(v.Latitude), formatCoord(v.Longitude),
			formatFloat(v.SOG), formatFloat(v.COG), v.Seen.Format("15:04:05"))
	}
	return nil
}

func formatCoord(f *float64) string {
	if f == nil {
		return "--"
	}
	return fmt.Sprintf("%.3f", *f)
}

func formatFloat(f *float64) string {
	if f == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f", *f)
}

func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " STATUS "
		fmt.Fprintln(v, " vessels: --  last update: --")
	}
	if v, err := g.SetView("list", 0, 3, maxX-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " VESSELS "
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	ctx := newContext()

	go func() {
		if err := readStdin(ctx, g); err != nil {
			log.Println("reading stdin:", err)
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// readStdin feeds each line of stdin to the parser, folding every
// Complete message into the vessel tracker and asking gocui to redraw.
func readStdin(ctx *context, g *gocui.Gui) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line, err := nmea.StripTagBlock(scanner.Bytes())
		if err != nil {
			continue
		}
		res, perr := ctx.p.Parse(line, true)
		if perr != nil || !res.Complete || res.Message == nil {
			continue
		}
		ctx.tracker.Update(res.Message)
		g.Update(ctx.update)
	}
	return scanner.Err()
}
