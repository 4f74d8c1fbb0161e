package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// Version is set during build.
var Version = "dev"

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "assetctl"
	app.Usage = "author Unity projects, scenes and assets from the command line"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML config supplying the editor version and projects root",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "scaffold",
			Usage:     "create a Unity project skeleton",
			ArgsUsage: "project_name",
			Description: `
Create Assets/ with the conventional subfolders and their .meta files,
ProjectSettings/ProjectVersion.txt and an empty Packages/manifest.json.
Existing files are left untouched, so running it again is safe.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "root, r",
					Usage: "directory the project is created in",
				},
				cli.StringFlag{
					Name:  "editor-version",
					Usage: "Unity editor version written into ProjectVersion.txt",
				},
			},
			Action: ScaffoldProject,
		},
		{
			Name:      "scene",
			Usage:     "write a .unity scene",
			ArgsUsage: "scene.unity",
			Description: `
Without --from the scene holds a main camera and a directional light. With
--from the JSON file lists the game objects, either as an array or as an
object with a "gameObjects" array.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Usage: "JSON description of the scene objects",
				},
			},
			Action: CreateScene,
		},
		{
			Name:      "add-object",
			Usage:     "append a game object to an existing scene",
			ArgsUsage: "scene.unity object.json",
			Action:    AddObject,
		},
		{
			Name:      "prefab",
			Usage:     "write a .prefab from a JSON game object",
			ArgsUsage: "asset.prefab object.json",
			Action:    CreatePrefab,
		},
		{
			Name:      "material",
			Usage:     "write a .mat from a JSON material description",
			ArgsUsage: "asset.mat material.json",
			Action:    CreateMaterial,
		},
		{
			Name:      "script",
			Usage:     "write a C# script, using a MonoBehaviour template unless --from is given",
			ArgsUsage: "Script.cs",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "class",
					Usage: "class name (default: the file name)",
				},
				cli.StringFlag{
					Name:  "from, f",
					Usage: "file holding the script body",
				},
			},
			Action: CreateScript,
		},
		{
			Name:      "meta",
			Usage:     "make sure each asset has a .meta sidecar",
			ArgsUsage: "asset1 asset2 ...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Usage: "importer kind: default, script, texture, audio or folder (default: by extension)",
				},
			},
			Action: EnsureMeta,
		},
		{
			Name:      "check-script",
			Usage:     "run the C# sanity check over script files",
			ArgsUsage: "Script1.cs Script2.cs ...",
			Action:    CheckScripts,
		},
		{
			Name:      "verify",
			Usage:     "check handles and references of Unity YAML documents",
			ArgsUsage: "scene.unity asset.prefab ...",
			Action:    VerifyDocuments,
		},
		{
			Name:      "packages",
			Usage:     "add packages to Packages/manifest.json",
			ArgsUsage: "project_path name@version ...",
			Action:    AddPackages,
		},
		{
			Name:      "list",
			Usage:     "list assets below a directory, excluding .meta files",
			ArgsUsage: "directory",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pattern, p",
					Value: "*",
					Usage: "glob matched against file names",
				},
			},
			Action: ListAssets,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
