package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

const fixtureTrips = `trip_id,user_id,bike_id,start_station_id,end_station_id,start_time,end_time,duration_minutes,distance_km,user_type,status
t1,u1,b1,s1,s2,2026-03-02 08:00:00,2026-03-02 08:25:00,25,5,casual,completed
t1,u1,b1,s1,s2,2026-03-02 08:00:00,2026-03-02 08:25:00,25,5,casual,completed
t2,u1,b1,s1,s3,2026-03-03 09:00:00,2026-03-03 09:30:00,,2,MEMBER,completed
t3,u2,b2,s2,s1,2026-03-04 10:00:00,2026-03-04 09:00:00,20,4,casual,completed
t4,u2,b2,s2,s1,2026-03-05 11:00:00,2026-03-05 11:15:00,15,3,,
t6,u3,b1,s3,s1,2026-04-06 12:00:00,2026-04-06 12:10:00,10,1,casual,completed
t5,u3,b2,s1,s2,not-a-time,2026-03-06 12:00:00,5,1,casual,completed
`

const fixtureStations = `station_id,name,capacity,latitude,longitude,install_date
s1,Harbor,20,60.17,24.94,2020-05-01
s2,Central 10,15,60.18,24.95,
s2,Central 10,15,60.18,24.95,
s3,Central 2,10,60.19,24.96,2021-06-01
s4,Broken,12,95,24.97,2021-06-01
`

const fixtureMaintenance = `record_id,bike_id,bike_type,date,maintenance_type,cost_eur,description
m1,b1,classic,2026-01-05,tire_repair,12.5,front tire
m2,b2,electric,2026-01-06,battery_replacement,80,battery swap
,b1,CLASSIC,2026-01-07,chain_lubrication,5,
m3,b2,electric,2026-01-08,general_inspection,abc,bad cost
`

// writeFixtures lays out the three raw CSV files in a temp data dir.
func writeFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range map[string]string{
		tripsFile:       fixtureTrips,
		stationsFile:    fixtureStations,
		maintenanceFile: fixtureMaintenance,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func writeGzipped(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

// cleanedSystem loads and cleans the standard fixtures.
func cleanedSystem(t *testing.T) (*System, CleanStats) {
	t.Helper()

	s := NewSystem(writeFixtures(t), WithLogger(slogt.New(t)))
	require.NoError(t, s.Load())

	st, err := s.Clean()
	require.NoError(t, err)

	return s, st
}
