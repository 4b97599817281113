package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/droidview/pkg/device"
)

var devicesCommand = &cli.Command{
	Name:  "devices",
	Usage: "List connected Android devices",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output device details as JSON",
		},
	},
	Action: runDevices,
}

func runDevices(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	adbPath := cfg.ADBPath
	if adbPath == "" {
		adbPath = "adb"
	}

	serials, err := device.List(c.Context, device.NewExecutor(), adbPath)
	if err != nil {
		return err
	}
	if len(serials) == 0 {
		fmt.Fprintln(c.App.Writer, "no devices connected")
		return nil
	}

	if !c.Bool("json") {
		for _, serial := range serials {
			fmt.Fprintln(c.App.Writer, serial)
		}
		return nil
	}

	infos := make([]device.DeviceInfo, 0, len(serials))
	for _, serial := range serials {
		d := device.NewWithExecutor(serial, adbPath, device.NewExecutor())
		info, err := d.Info(c.Context)
		if err != nil {
			info = device.DeviceInfo{Serial: serial}
		}
		infos = append(infos, info)
	}
	return printJSON(c, infos)
}
