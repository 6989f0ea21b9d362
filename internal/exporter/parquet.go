// Package exporter writes the persisted prediction log to parquet, either
// on the local filesystem or as an S3 object.
package exporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/cloudwriter"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories"
	"github.com/schollz/progressbar/v3"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
	"go.uber.org/zap"
)

// predictionRow is the parquet projection of a PredictionRecord.
type predictionRow struct {
	ID             string  `parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Place          string  `parquet:"name=place,type=BYTE_ARRAY,convertedtype=UTF8"`
	Day            string  `parquet:"name=day,type=BYTE_ARRAY,convertedtype=UTF8"`
	StartHour      int32   `parquet:"name=start_hour,type=INT32"`
	EndHour        int32   `parquet:"name=end_hour,type=INT32"`
	PeakHour       int32   `parquet:"name=peak_hour,type=INT32"`
	PeakTraffic    float64 `parquet:"name=peak_traffic,type=DOUBLE"`
	AverageTraffic float64 `parquet:"name=average_traffic,type=DOUBLE"`
	CreatedAt      int64   `parquet:"name=created_at,type=INT64"`
}

// cloudParquetFile adapts an ObjectWriter to the parquet source interface.
// Only sequential writes are supported; the upload happens on Close.
type cloudParquetFile struct {
	objectWriter cloudwriter.ObjectWriter
	offset       int64
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.objectWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *cloudParquetFile) Close() error {
	return c.objectWriter.Close()
}

// Exporter drains the prediction repository into a parquet file.
type Exporter struct {
	config      models.ExportConfig
	predictions repositories.PredictionRepository
	logger      *zap.Logger
}

func New(cfg models.ExportConfig, predictions repositories.PredictionRepository, logger *zap.Logger) *Exporter {
	return &Exporter{config: cfg, predictions: predictions, logger: logger}
}

// Run exports up to limit records and returns the destination written to.
func (e *Exporter) Run(ctx context.Context, limit int) (string, error) {
	records, err := e.predictions.Recent(ctx, limit)
	if err != nil {
		return "", fmt.Errorf("failed to read prediction log: %w", err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("no prediction records to export")
	}

	name := fmt.Sprintf("traffic_predictions_%s.parquet", time.Now().UTC().Format("20060102T150405Z"))

	file, destination, err := e.openTarget(name)
	if err != nil {
		return "", err
	}

	pw, err := writer.NewParquetWriter(file, new(predictionRow), 4)
	if err != nil {
		file.Close()
		return "", fmt.Errorf("failed to create parquet writer: %w", err)
	}

	bar := progressbar.Default(int64(len(records)), "exporting predictions")
	for _, record := range records {
		row := predictionRow{
			ID:             record.ID,
			Place:          record.Place,
			Day:            record.Day,
			StartHour:      record.StartHour,
			EndHour:        record.EndHour,
			PeakHour:       record.PeakHour,
			PeakTraffic:    record.PeakTraffic,
			AverageTraffic: record.AverageTraffic,
			CreatedAt:      record.CreatedAt.Unix(),
		}
		if err := pw.Write(row); err != nil {
			file.Close()
			return "", fmt.Errorf("failed to write parquet row: %w", err)
		}
		bar.Add(1)
	}

	if err := pw.WriteStop(); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export target: %w", err)
	}

	e.logger.Info("exported prediction log",
		zap.Int("records", len(records)),
		zap.String("destination", destination))
	return destination, nil
}

func (e *Exporter) openTarget(name string) (source.ParquetFile, string, error) {
	if e.config.Destination == "s3" {
		factory, err := e.cloudFactory()
		if err != nil {
			return nil, "", err
		}
		key := name
		if e.config.CloudStorage.KeyPrefix != "" {
			key = e.config.CloudStorage.KeyPrefix + "/" + name
		}
		objectWriter, err := factory.NewWriter(e.config.CloudStorage.BucketName, key)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create cloud writer: %w", err)
		}
		destination := fmt.Sprintf("s3://%s/%s", e.config.CloudStorage.BucketName, key)
		return &cloudParquetFile{objectWriter: objectWriter}, destination, nil
	}

	if err := os.MkdirAll(e.config.OutputFolder, os.ModePerm); err != nil {
		return nil, "", fmt.Errorf("failed to create output folder: %w", err)
	}
	path := filepath.Join(e.config.OutputFolder, name)
	file, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create local file: %w", err)
	}
	return file, path, nil
}

func (e *Exporter) cloudFactory() (cloudwriter.WriterFactory, error) {
	switch e.config.CloudStorage.Provider {
	case "s3", "":
		return cloudwriter.NewS3WriterFactory(e.config.CloudStorage.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", e.config.CloudStorage.Provider)
	}
}
