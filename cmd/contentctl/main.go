package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starcomputers/internal/client"
)

const usage = `用法: contentctl [flags] <command> [args]

命令:
  get                      打印当前内容文档
  export [dir]             导出文档到目录（默认当前目录）
  import <file>            从 JSON 文件全量导入
  reset                    重置为默认内容
  set-section <name> <file> 用文件内容整体替换指定区块

flags:
  -api URL      后端地址（默认 http://localhost:5000/api）
  -backup FILE  本地备份文件路径
`

func main() {
	apiBase := flag.String("api", "http://localhost:5000/api", "content API base URL")
	backupPath := flag.String("backup", client.DefaultBackupFilename, "local backup file path")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	manager := client.NewManager(client.NewClient(*apiBase), client.NewFileBackup(*backupPath))
	manager.Init(ctx)

	if manager.Source() != client.SourceAPI {
		log.Printf("backend unreachable, operating on %s snapshot", manager.Source())
	}

	if err := run(ctx, manager, args); err != nil {
		log.Fatalf("contentctl %s: %v", args[0], err)
	}
}

func run(ctx context.Context, manager *client.Manager, args []string) error {
	switch args[0] {
	case "get":
		data, err := manager.Export()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil

	case "export":
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		path, err := manager.WriteExport(dir)
		if err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", path)
		return nil

	case "import":
		if len(args) < 2 {
			return fmt.Errorf("import requires a file argument")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		if err := manager.Import(ctx, data); err != nil {
			return err
		}
		fmt.Println("content imported")
		return nil

	case "reset":
		if _, err := manager.ResetToDefault(ctx); err != nil {
			return err
		}
		fmt.Println("content reset to default")
		return nil

	case "set-section":
		if len(args) < 3 {
			return fmt.Errorf("set-section requires a section name and a file argument")
		}
		data, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}
		if err := manager.UpdateSection(ctx, args[1], json.RawMessage(data)); err != nil {
			return err
		}
		fmt.Printf("section %s updated\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
