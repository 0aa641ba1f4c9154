package services

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"mime"

	"github.com/twpayne/go-gpx"
	"github.com/twpayne/go-kml/v3"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/storage"
)

// gpxCreator identifies generated GPX files.
const gpxCreator = "Travel Manager GPX Generator"

// ImageReader is the slice of the image store the exporter needs.
type ImageReader interface {
	Open(name string) (io.ReadCloser, error)
	Exists(name string) bool
}

// ExportService serializes itineraries to the KML, KMZ and GPX formats.
type ExportService struct {
	activities ActivityReader
	images     ImageReader
}

// NewExportService creates a new ExportService instance.
func NewExportService(activities ActivityReader, images ImageReader) *ExportService {
	return &ExportService{
		activities: activities,
		images:     images,
	}
}

// WriteKML writes the travel's itinerary as a KML document: one Point
// placemark per activity. Stored coordinates are "lat, lon"; KML wants
// lon-first, so the pair is swapped here.
func (svc *ExportService) WriteKML(ctx context.Context, w io.Writer, travel *models.TravelDB) error {
	activities, err := svc.activities.ListByIDs(ctx, travel.Activities)
	if err != nil {
		return err
	}

	placemarks := make([]kml.Element, 0, len(activities))
	for _, activity := range activities {
		lat, lon, err := models.ParseCoordinates(activity.Coordinates)
		if err != nil {
			logger.Log.Errorw("bad activity coordinates", "id", activity.ID, "err", err)
			return err
		}
		placemarks = append(placemarks, kml.Placemark(
			kml.Name(activity.Name),
			kml.Description(activity.Description),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: lon, Lat: lat})),
		))
	}

	return kml.KML(kml.Document(placemarks...)).WriteIndent(w, "", "  ")
}

// WriteKMZ writes a KMZ archive: the itinerary KML plus each activity's
// image under activities/<id>.png. Activities without a stored image get no
// icon reference at all rather than a dangling one.
func (svc *ExportService) WriteKMZ(ctx context.Context, w io.Writer, travel *models.TravelDB) error {
	activities, err := svc.activities.ListByIDs(ctx, travel.Activities)
	if err != nil {
		return err
	}

	archive := zip.NewWriter(w)

	placemarks := make([]kml.Element, 0, len(activities))
	for _, activity := range activities {
		lat, lon, err := models.ParseCoordinates(activity.Coordinates)
		if err != nil {
			logger.Log.Errorw("bad activity coordinates", "id", activity.ID, "err", err)
			return err
		}

		children := []kml.Element{
			kml.Name(activity.Name),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: lon, Lat: lat})),
		}

		imageName := storage.ActivityImage(activity.ID)
		if svc.images.Exists(imageName) {
			if err := svc.embedImage(archive, imageName); err != nil {
				return err
			}
			children = append(children,
				kml.Description(fmt.Sprintf("%s\n<img src=%q/>", activity.Description, imageName)),
				kml.Style(kml.IconStyle(kml.Icon(kml.Href(imageName)))),
			)
		} else {
			children = append(children, kml.Description(activity.Description))
		}

		placemarks = append(placemarks, kml.Placemark(children...))
	}

	entry, err := archive.Create("travel.kml")
	if err != nil {
		return err
	}
	if err := kml.KML(kml.Document(placemarks...)).WriteIndent(entry, "", "  "); err != nil {
		return err
	}

	return archive.Close()
}

func (svc *ExportService) embedImage(archive *zip.Writer, name string) error {
	src, err := svc.images.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := archive.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}

// WriteGPX writes a single activity as a GPX 1.1 waypoint.
func (svc *ExportService) WriteGPX(ctx context.Context, w io.Writer, activityID int64) error {
	activity, err := svc.activities.GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrNotFound
	}

	lat, lon, err := models.ParseCoordinates(activity.Coordinates)
	if err != nil {
		logger.Log.Errorw("bad activity coordinates", "id", activity.ID, "err", err)
		return err
	}

	g := &gpx.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Wpt: []*gpx.WptType{{
			Lat:  lat,
			Lon:  lon,
			Name: activity.Name,
			Desc: activity.Description,
		}},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return g.WriteIndent(w, "", "  ")
}

// AttachmentDisposition builds a Content-Disposition value with the file
// name properly escaped, so arbitrary travel names cannot break the header.
func AttachmentDisposition(name, ext string) string {
	return mime.FormatMediaType("attachment", map[string]string{
		"filename": name + "." + ext,
	})
}
