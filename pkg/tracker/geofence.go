package tracker

import (
	"context"
	"fmt"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// detectCrossings compares the ping against each geofenced stop of the
// shipment, both for the current position and the asset's last known one,
// and records entry/exit transitions. Stops are evaluated independently - a
// single ping can enter one stop and exit another when fences overlap, and
// one stop's failed update never blocks the rest.
func (p *Pipeline) detectCrossings(ctx context.Context, ping *margdf.Ping, shipment *margdf.Shipment, positions *positionCache) error {
	stops, err := p.Repository.ShipmentStops(ctx, shipment.PrimaryIdentifier)
	if err != nil {
		return fmt.Errorf("failed to get stops for shipment %s: %w", shipment.PrimaryIdentifier, err)
	}

	if len(stops) == 0 {
		return nil
	}

	gpsDetail, err := p.Repository.GpsDetail(ctx, shipment.PrimaryIdentifier)
	if err != nil {
		return fmt.Errorf("failed to get gps detail for shipment %s: %w", shipment.PrimaryIdentifier, err)
	}

	reportingFrequency := margdf.DefaultReportingFrequency
	if gpsDetail != nil && gpsDetail.ReportingFrequency > 0 {
		reportingFrequency = gpsDetail.ReportingFrequency
	}

	previousLocation, err := positions.previous(ctx, ping.AssetIdentifier)
	if err != nil {
		return fmt.Errorf("failed to get last known position of %s: %w", ping.AssetIdentifier, err)
	}

	geofencedStops := slices.Clone(stops)
	util.InPlaceFilter(&geofencedStops, func(stop *margdf.Stop) bool { return stop.HasGeofence() })

	for _, stop := range geofencedStops {
		isInside := ping.Location.Distance(stop.Location) <= stop.GeofenceRadius

		wasInside := false
		if previousLocation != nil {
			wasInside = previousLocation.Distance(stop.Location) <= stop.GeofenceRadius
		}

		switch {
		case !wasInside && isInside:
			p.recordEntry(ctx, ping, shipment, stops, stop, reportingFrequency)
		case wasInside && !isInside:
			p.recordExit(ctx, ping, shipment, stop, reportingFrequency)
		}
	}

	return nil
}

func (p *Pipeline) recordEntry(ctx context.Context, ping *margdf.Ping, shipment *margdf.Shipment, stops []*margdf.Stop, stop *margdf.Stop, reportingFrequency int) {
	entryTime := p.Now()

	// A visit sequence is assigned on first entry only and never
	// reassigned. Re-entries still re-stamp the entry time.
	var assignedSequence *int
	if stop.VisitSequence == nil {
		nextSequence := nextVisitSequence(stops)
		assignedSequence = &nextSequence
	}

	if err := p.Repository.SetStopEntry(ctx, stop.PrimaryIdentifier, entryTime, assignedSequence); err != nil {
		log.Error().Err(err).Str("stop", stop.PrimaryIdentifier).Msg("Failed to record stop entry")
		return
	}

	stop.EntryTime = &entryTime
	if assignedSequence != nil {
		stop.VisitSequence = assignedSequence
	}

	log.Info().
		Str("asset", ping.AssetIdentifier).
		Str("shipment", shipment.PrimaryIdentifier).
		Str("stop", stop.PrimaryIdentifier).
		Msg("Asset entered stop geofence")

	p.publishCrossing(&margdf.StopCrossingEvent{
		Type: margdf.CrossingEventEntry,

		AssetIdentifier:    ping.AssetIdentifier,
		ShipmentIdentifier: shipment.PrimaryIdentifier,
		StopIdentifier:     stop.PrimaryIdentifier,

		Location:      ping.Location,
		VisitSequence: stop.VisitSequence,

		ReportingFrequency: reportingFrequency,

		OccurredAt: entryTime,
	})
}

func (p *Pipeline) recordExit(ctx context.Context, ping *margdf.Ping, shipment *margdf.Shipment, stop *margdf.Stop, reportingFrequency int) {
	exitTime := p.Now()

	if err := p.Repository.SetStopExit(ctx, stop.PrimaryIdentifier, exitTime); err != nil {
		log.Error().Err(err).Str("stop", stop.PrimaryIdentifier).Msg("Failed to record stop exit")
		return
	}

	stop.ExitTime = &exitTime

	log.Info().
		Str("asset", ping.AssetIdentifier).
		Str("shipment", shipment.PrimaryIdentifier).
		Str("stop", stop.PrimaryIdentifier).
		Msg("Asset exited stop geofence")

	p.publishCrossing(&margdf.StopCrossingEvent{
		Type: margdf.CrossingEventExit,

		AssetIdentifier:    ping.AssetIdentifier,
		ShipmentIdentifier: shipment.PrimaryIdentifier,
		StopIdentifier:     stop.PrimaryIdentifier,

		Location: ping.Location,

		ReportingFrequency: reportingFrequency,

		OccurredAt: exitTime,
	})
}

// nextVisitSequence is evaluated fresh for every entry, over all of the
// shipment's stops, so entries earlier in the same batch are observed and
// sequences never collide
func nextVisitSequence(stops []*margdf.Stop) int {
	highest := 0

	for _, stop := range stops {
		if stop.VisitSequence != nil && *stop.VisitSequence > highest {
			highest = *stop.VisitSequence
		}
	}

	return highest + 1
}
