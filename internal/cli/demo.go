package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/vgc"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the collector demonstration scenario",
	Long:  "Walks the collector through allocation, state transitions, and two sweep cycles (with and without pending operations), printing the heap status after each phase.",
	Run:   runDemo,
}

func runDemo(cmd *cobra.Command, args []string) {
	collector := vgc.New()

	collector.RegisterPreSweepHook(func() {
		fmt.Println("[pre-sweep] pausing application threads...")
	})
	collector.RegisterPostSweepHook(func(reclaimed int) {
		fmt.Printf("[post-sweep] resuming application threads, %d object(s) reclaimed\n", reclaimed)
	})

	fmt.Println("=== Virtual Garbage Collector Demonstration ===")

	fmt.Println("\nPhase 1: allocating objects into zones")
	collector.AllocateState(101, vgc.ZoneGreen, vgc.StateActive)
	collector.AllocateState(102, vgc.ZoneRed, vgc.StateMarked)
	collector.AllocateState(103, vgc.ZoneBlue, vgc.StatePersist)
	collector.AllocateState(104, vgc.ZoneGreen, vgc.StateIdle)
	collector.AllocateState(105, vgc.ZoneRed, vgc.StateActive)
	printStatus(collector)

	fmt.Println("\nPhase 2: simulating application runtime behavior")
	transitions := []struct {
		id    uint32
		state vgc.State
	}{
		{102, vgc.StateExpired},
		{104, vgc.StateActive},
		{105, vgc.StateDemote},
	}
	for _, tr := range transitions {
		if err := collector.Transition(tr.id, tr.state); err != nil {
			fmt.Printf("transition %d: %v\n", tr.id, err)
			continue
		}
		fmt.Printf("object %d transitioned to %s\n", tr.id, tr.state)
	}
	printStatus(collector)

	fmt.Println("\nPhase 3: executing garbage collection")
	collector.Sweep(0)
	printStatus(collector)

	fmt.Println("\nPhase 4: simulating pending operations")
	collector.Allocate(106, vgc.ZoneGreen)
	collector.Allocate(107, vgc.ZoneRed)

	pendingMask := uint8(0b011)
	fmt.Printf("executing sweep with pending operations mask: %d\n", pendingMask)
	collector.Sweep(pendingMask)
	printStatus(collector)

	fmt.Printf("\n=== Demonstration Complete ===\n")
	fmt.Printf("Final heap contains %d managed objects.\n", collector.Count())
}

func printStatus(c *vgc.Collector) {
	fmt.Println("\n=== Heap Status ===")
	fmt.Printf("Total managed objects: %d\n", c.Count())
	if c.Count() == 0 {
		fmt.Println("Heap is empty.")
		return
	}

	d := c.ZoneDistribution()
	fmt.Println("\nZone distribution:")
	fmt.Printf("  RED   (short-lived):  %d\n", d.Red)
	fmt.Printf("  GREEN (medium-lived): %d\n", d.Green)
	fmt.Printf("  BLUE  (long-lived):   %d\n", d.Blue)
	if d.Other > 0 {
		fmt.Printf("  MIXED/other:          %d\n", d.Other)
	}

	fmt.Println("\n    ID | Zone   | State      | Alive?")
	fmt.Println("-------|--------|------------|-------")
	for _, row := range c.StatusReport() {
		alive := "NO"
		if row.Alive {
			alive = "YES"
		}
		fmt.Printf("%6d | %-6s | %-10s | %s\n", row.ID, row.Zone, row.State, alive)
	}
}
