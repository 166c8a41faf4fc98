package main

import (
	"availability-service/internal/app/services/core/availability"
	"fmt"
	"log"
	"time"
)

// A small demonstration of the availability engine used as a library:
// Monday-Friday office hours with a lunch booking and a public holiday.
func main() {
	plan, err := availability.BuildWeekPlan([]availability.PlanEntry{
		{Days: []string{"mon", "tue", "wed", "thu", "fri"}, Start: "09:00", End: "17:00"},
	})
	if err != nil {
		log.Fatal(err)
	}

	holiday := time.Date(2024, 1, 9, 0, 0, 0, 0, time.Local) // a Tuesday
	calendar := availability.DefaultBusinessCalendar().WithHolidays(holiday)

	lunch, err := availability.NewInterval(
		time.Date(2024, 1, 8, 12, 0, 0, 0, time.Local),
		time.Date(2024, 1, 8, 13, 0, 0, 0, time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	from := time.Date(2024, 1, 8, 11, 30, 0, 0, time.Local) // Monday morning

	slot, found, err := availability.FindNextSlot(availability.NextSlotQuery{
		From:         from,
		SlotDuration: time.Hour,
		SlotInterval: 15 * time.Minute,
		BusySlots:    []availability.BusySlot{lunch},
		WindowsFor:   plan.WindowsFor,
		Calendar:     &calendar,
	})
	if err != nil {
		log.Fatal(err)
	}
	if found {
		fmt.Printf("next free hour starts at %s\n", slot.Format(time.RFC3339))
	} else {
		fmt.Println("no free hour inside the search horizon")
	}

	period, err := availability.NewInterval(
		time.Date(2024, 1, 8, 9, 0, 0, 0, time.Local),
		time.Date(2024, 1, 10, 17, 0, 0, 0, time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	slots, err := availability.FindAvailableSlots(availability.SlotListQuery{
		Period:       period,
		SlotDuration: time.Hour,
		BusySlots:    []availability.BusySlot{lunch},
		WindowsFor:   plan.WindowsFor,
		Calendar:     &calendar,
		MaxSlots:     10,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("first %d free hours (holiday on Tuesday is skipped):\n", len(slots))
	for _, s := range slots {
		fmt.Println("  " + s.Format(time.RFC3339))
	}
}
